package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"nba-player-stats-service/internal/http/middleware"
	"nba-player-stats-service/internal/logging"
	"nba-player-stats-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeUpstreamError maps dataset refresh failures onto transport statuses:
// rate limits surface as 429 with a Retry-After hint, everything else as 502.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if rl, ok := providers.AsRateLimitError(err); ok {
		if secs := int(rl.RetryAfter.Seconds()); secs > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(secs))
		}
		writeError(w, r, http.StatusTooManyRequests, "upstream rate limited", logger)
		return
	}

	logging.Error(logger, "stats snapshot unavailable", err)
	writeError(w, r, http.StatusBadGateway, "stats temporarily unavailable", logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
