package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable indicates a provider is missing or misconfigured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError wraps a transport or upstream failure while downloading the
// dataset. A refresh cycle that hits one aborts and keeps the previous
// snapshot; it is never retried automatically.
type FetchError struct {
	Provider string
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: fetch failed", e.Provider)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Provider, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}

// SchemaError reports a raw table whose shape does not match expectations
// (missing column, unparseable game date). Like FetchError it aborts the
// refresh cycle without touching the previous snapshot.
type SchemaError struct {
	File   string
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: unexpected schema: %s", e.File, e.Detail)
}

// AsSchemaError attempts to unwrap an error into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var sErr *SchemaError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers and
// locally suppressed fetches.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
