package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"nba-player-stats-service/internal/domain/stats"
	"nba-player-stats-service/internal/http/requestutil"
	"nba-player-stats-service/internal/logging"
)

// Refresher forces a snapshot reload regardless of age.
type Refresher interface {
	Refresh(ctx context.Context) (*stats.Snapshot, error)
}

// AdminHandler exposes admin-only endpoints (e.g., forced refresh).
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshSnapshot reloads the dataset immediately, bypassing the TTL.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshot(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	snap, err := h.refresher.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeUpstreamError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"snapshotId": snap.ID,
		"players":    len(snap.Aggregates),
		"fetchedAt":  snap.FetchedAt,
		"status":     "ok",
	}, logger)
	logging.Info(logger, "admin refresh complete",
		logging.FieldSnapshotID, snap.ID,
		logging.FieldCount, len(snap.Aggregates),
	)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func clientIP(r *http.Request) string {
	return requestutil.ClientIP(r)
}
