package http

import (
	nethttp "net/http"

	"nba-player-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The root route doubles as
// the catch-all, so unknown paths land in Root's 404.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.PlayerNames)
	mux.HandleFunc("/players/", handler.PlayerStats)
	mux.HandleFunc("/compare", handler.Compare)
	mux.HandleFunc("/", handler.Root)
	return mux
}
