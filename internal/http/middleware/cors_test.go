package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-player-stats-service/internal/testutil"
)

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := CORSMiddleware(next)
	rr := testutil.Serve(handler, http.MethodGet, "/players", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected permissive origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatalf("expected allowed methods header")
	}
}

func TestCORSMiddlewareAnswersPreflight(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	handler := CORSMiddleware(next)
	req := httptest.NewRequest(http.MethodOptions, "/compare", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusNoContent)
	if nextCalled {
		t.Fatalf("expected preflight to short-circuit")
	}
}
