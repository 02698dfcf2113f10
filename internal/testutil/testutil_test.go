package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/providers"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	agg := SampleAggregate("LeBron James")
	if agg.Name != "LeBron James" || agg.Career.Games == 0 || agg.Bio == nil {
		t.Fatalf("unexpected aggregate fixture %+v", agg)
	}

	snap := SampleSnapshot()
	if snap.ID == "" || snap.FetchedAt.IsZero() {
		t.Fatalf("expected stamped snapshot, got %+v", snap)
	}
	if len(snap.Aggregates) != 2 || len(snap.Names) != 3 {
		t.Fatalf("unexpected snapshot contents %+v", snap.Collection)
	}
	if _, ok := snap.Aggregates["Alex Young"]; ok {
		t.Fatalf("expected Alex Young listed without an aggregate")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)

	errHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"player not found","requestId":"abc"}`))
	})
	rr3 := Serve(errHandler, http.MethodGet, "/missing", nil)
	AssertErrorBody(t, rr3, "player not found")
}

func TestServerStubs(t *testing.T) {
	w := &StubWarmer{Err: errors.New("stop")}
	w.Start(context.Background())
	if err := w.Stop(context.Background()); !errors.Is(err, w.Err) {
		t.Fatalf("expected stop error")
	}
	if w.StartCalls != 1 || w.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", w)
	}
	if w.Status() != w.StatusVal {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" {
		t.Fatalf("expected addr from ErrHTTPServer")
	}
	if e.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for ErrHTTPServer")
	}

	c := &CloseableHTTPServer{}
	_ = c.ListenAndServe()
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" {
		t.Fatalf("expected addr from CloseableHTTPServer")
	}
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	ds := boxscore.Dataset{Games: []boxscore.GameLog{{FirstName: "Jane", LastName: "Doe"}}}

	p := GoodProvider{Dataset: ds}
	if got, _ := p.FetchDataset(ctx); len(got.Games) != 1 {
		t.Fatalf("expected dataset from GoodProvider")
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchDataset(ctx); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	empty := EmptyProvider{}
	if got, err := empty.FetchDataset(ctx); err != nil || len(got.Games) != 0 {
		t.Fatalf("expected empty result, got %v err %v", got, err)
	}

	unavail := UnavailableProvider{}
	if _, err := unavail.FetchDataset(ctx); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
}

func TestServiceHelpers(t *testing.T) {
	svc := NewServiceWithSnapshot(SampleSnapshot())
	names, err := svc.Names(context.Background())
	if err != nil || len(names) != 3 {
		t.Fatalf("expected names from snapshot service, got %v err %v", names, err)
	}

	failing := NewServiceWithError(errors.New("cache down"))
	if _, err := failing.Names(context.Background()); err == nil {
		t.Fatalf("expected error from failing service")
	}
}
