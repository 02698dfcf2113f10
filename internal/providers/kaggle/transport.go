package kaggle

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient prefers an injected client; otherwise a plain client is
// built with the configured timeout. A zero timeout means none: the game-log
// table runs to hundreds of megabytes and may legitimately take minutes.
func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func normalizeDataset(raw string) string {
	if raw == "" {
		raw = defaultDataset
	}
	return strings.Trim(raw, "/")
}

func resolveFile(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
