package kaggle

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/providers"
)

// Config controls how the Kaggle client reaches the dataset download API.
type Config struct {
	BaseURL     string
	Dataset     string
	GamesFile   string
	PlayersFile string
	Username    string
	Key         string
	HTTPClient  *http.Client
	HTTPTimeout time.Duration
}

// Client downloads the two dataset tables from the Kaggle API and decodes
// them into domain rows.
type Client struct {
	baseURL     string
	dataset     string
	gamesFile   string
	playersFile string
	username    string
	key         string
	httpClient  httpDoer
}

// NewClient constructs a Kaggle client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:     normalizeBaseURL(cfg.BaseURL),
		dataset:     normalizeDataset(cfg.Dataset),
		gamesFile:   resolveFile(cfg.GamesFile, defaultGamesFile),
		playersFile: resolveFile(cfg.PlayersFile, defaultPlayersFile),
		username:    cfg.Username,
		key:         cfg.Key,
		httpClient:  resolveHTTPClient(cfg.HTTPClient, cfg.HTTPTimeout),
	}
}

// FetchDataset downloads and decodes both tables. The files are fetched
// sequentially and a failure on either aborts the whole fetch, so callers
// never see a half-populated dataset.
func (c *Client) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	gamesRaw, err := c.download(ctx, c.gamesFile)
	if err != nil {
		return boxscore.Dataset{}, err
	}
	games, err := parseGameLogs(c.gamesFile, gamesRaw)
	if err != nil {
		return boxscore.Dataset{}, err
	}

	playersRaw, err := c.download(ctx, c.playersFile)
	if err != nil {
		return boxscore.Dataset{}, err
	}
	players, err := parsePlayers(c.playersFile, playersRaw)
	if err != nil {
		return boxscore.Dataset{}, err
	}

	return boxscore.Dataset{Games: games, Players: players}, nil
}

// download fetches one dataset file and returns its CSV bytes, unzipping
// when Kaggle serves the file compressed.
func (c *Client) download(ctx context.Context, file string) ([]byte, error) {
	endpoint := c.baseURL + "/datasets/download/" + c.dataset + "/" + url.PathEscape(file)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.FetchError{
			Provider: providerName,
			Cause:    fmt.Errorf("unexpected status %d fetching %s: %s", resp.StatusCode, file, strings.TrimSpace(string(body))),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	return maybeUnzip(file, raw)
}

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// maybeUnzip passes plain CSV bytes through and extracts the matching entry
// from a zip archive otherwise.
func maybeUnzip(file string, raw []byte) ([]byte, error) {
	if !bytes.HasPrefix(raw, zipMagic) {
		return raw, nil
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	entry := matchEntry(zr, file)
	if entry == nil {
		return nil, &providers.FetchError{
			Provider: providerName,
			Cause:    fmt.Errorf("archive for %s has no matching entry", file),
		}
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, &providers.FetchError{Provider: providerName, Cause: err}
	}
	return out, nil
}

func matchEntry(zr *zip.Reader, file string) *zip.File {
	for _, f := range zr.File {
		if f.Name == file {
			return f
		}
	}
	if len(zr.File) == 1 {
		return zr.File[0]
	}
	return nil
}

func rateLimitError(resp *http.Response) error {
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		Message:    "kaggle rate limited",
	}
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
