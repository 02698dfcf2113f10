package server

import (
	"context"

	"nba-player-stats-service/internal/warmer"
)

// Warmer defines the minimal warm-loop behavior needed by the server.
type Warmer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() warmer.Status
}
