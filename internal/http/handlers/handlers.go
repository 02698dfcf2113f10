package handlers

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"nba-player-stats-service/internal/app/players"
	"nba-player-stats-service/internal/logging"
	"nba-player-stats-service/internal/warmer"
)

const welcomeMessage = "NBA player stats API. Browse /players, /players/{name} or POST /compare."

// Handler wires HTTP routes to the player query service.
type Handler struct {
	svc      *players.Service
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *players.Service, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Root serves the welcome payload. The mux routes every otherwise unmatched
// path here, so anything but "/" is a 404.
func (h *Handler) Root(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"message": welcomeMessage}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// PlayerNames lists every player name present in the current snapshot.
func (h *Handler) PlayerNames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	names, err := h.svc.Names(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err, logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"count":   len(names),
		"players": names,
	}, logger)
}

// PlayerStats returns the aggregate for the player named in the path.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	raw := strings.TrimPrefix(r.URL.Path, "/players/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player name", logger)
		return
	}

	agg, ok, err := h.svc.Stats(r.Context(), name)
	if err != nil {
		writeUpstreamError(w, r, err, logger)
		return
	}
	if !ok {
		logging.Info(logger, "player not found", logging.FieldPlayer, name)
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, map[string]any{
		"playerName": agg.Name,
		"stats":      agg,
	}, logger)
}

type compareRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// Compare resolves two players against the same snapshot and returns both
// aggregates side by side.
func (h *Handler) Compare(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	if strings.TrimSpace(req.Player1) == "" || strings.TrimSpace(req.Player2) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "player1 and player2 are required", logger)
		return
	}

	cmp, ok, err := h.svc.Compare(r.Context(), req.Player1, req.Player2)
	if err != nil {
		writeUpstreamError(w, r, err, logger)
		return
	}
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, cmp, logger)
}
