package kaggle

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"nba-player-stats-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const gamesCSV = `firstName,lastName,gameDate,gameType,points,assists,reboundsTotal,steals,blocks,turnovers,fieldGoalsMade,fieldGoalsAttempted,threePointersMade,threePointersAttempted,freeThrowsMade,freeThrowsAttempted
LeBron,James,2023-11-01 00:00:00,Regular Season,28,8,7,1,1,3,10,20,2,6,6,7
Stephen,Curry,2023-11-02 00:00:00,Playoffs,33,5,4,2,0,2,11,22,7,14,4,4
`

const playersCSV = `firstName,lastName,guard,forward,center,height,bodyWeight
LeBron,James,False,True,False,81.0,250.0
Stephen,Curry,True,False,False,74.0,185.0
`

func csvResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchDatasetDownloadsAndParsesBothFiles(t *testing.T) {
	var paths []string
	var auths []string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		paths = append(paths, req.URL.Path)
		user, pass, _ := req.BasicAuth()
		auths = append(auths, user+":"+pass)
		if strings.HasSuffix(req.URL.Path, "PlayerStatistics.csv") {
			return csvResponse(gamesCSV), nil
		}
		return csvResponse(playersCSV), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/api/v1",
		Username:   "user",
		Key:        "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	ds, err := client.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected two downloads, got %v", paths)
	}
	want := "/api/v1/datasets/download/" + defaultDataset + "/PlayerStatistics.csv"
	if paths[0] != want {
		t.Fatalf("expected games download path %s, got %s", want, paths[0])
	}
	for _, a := range auths {
		if a != "user:secret" {
			t.Fatalf("expected basic auth on every request, got %q", a)
		}
	}

	if len(ds.Games) != 2 {
		t.Fatalf("expected 2 game rows, got %d", len(ds.Games))
	}
	g := ds.Games[0]
	if g.FullName() != "LeBron James" || g.Points != 28 || g.GameType != "Regular Season" {
		t.Fatalf("unexpected first game row %+v", g)
	}
	if !g.GameDate.Equal(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected game date %s", g.GameDate)
	}
	if len(ds.Players) != 2 {
		t.Fatalf("expected 2 bio rows, got %d", len(ds.Players))
	}
	if ds.Players[0].Position() != "F" || ds.Players[1].Position() != "G" {
		t.Fatalf("unexpected positions %+v", ds.Players)
	}
}

func TestFetchDatasetUnzipsArchivedFiles(t *testing.T) {
	zipped := func(name, body string) []byte {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
		if err := zw.Close(); err != nil {
			t.Fatalf("zip close: %v", err)
		}
		return buf.Bytes()
	}

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		var payload []byte
		if strings.HasSuffix(req.URL.Path, "PlayerStatistics.csv") {
			payload = zipped("PlayerStatistics.csv", gamesCSV)
		} else {
			payload = zipped("Players.csv", playersCSV)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(payload)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	ds, err := client.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("expected zipped payloads handled, got %v", err)
	}
	if len(ds.Games) != 2 || len(ds.Players) != 2 {
		t.Fatalf("expected parsed rows from archives, got %d/%d", len(ds.Games), len(ds.Players))
	}
}

func TestFetchDatasetWrapsTransportErrors(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDataset(context.Background())
	fe, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fe.Provider != providerName {
		t.Fatalf("expected provider name, got %q", fe.Provider)
	}
}

func TestFetchDatasetUnexpectedStatus(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader("missing credentials")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDataset(context.Background())
	fe, ok := providers.AsFetchError(err)
	if !ok {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if !strings.Contains(fe.Error(), "403") {
		t.Fatalf("expected status in message, got %q", fe.Error())
	}
}

func TestFetchDatasetRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		header := make(http.Header)
		header.Set("Retry-After", "30")
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
			Header:     header,
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDataset(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("expected retry-after 30s, got %s", rl.RetryAfter)
	}
	if rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 status, got %d", rl.StatusCode)
	}
}

func TestFetchDatasetStopsAfterBadGamesTable(t *testing.T) {
	var calls int
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return csvResponse("firstName,lastName\nA,B\n"), nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchDataset(context.Background())
	se, ok := providers.AsSchemaError(err)
	if !ok {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if se.File != defaultGamesFile {
		t.Fatalf("expected error on games file, got %q", se.File)
	}
	if calls != 1 {
		t.Fatalf("expected no players download after schema failure, got %d calls", calls)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected 0 for empty header, got %s", got)
	}
	if got := parseRetryAfter("45"); got != 45*time.Second {
		t.Fatalf("expected 45s, got %s", got)
	}
	if got := parseRetryAfter("garbage"); got != 0 {
		t.Fatalf("expected 0 for unparseable header, got %s", got)
	}
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > 90*time.Second {
		t.Fatalf("expected positive duration up to 90s, got %s", got)
	}
}
