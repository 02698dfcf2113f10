package testutil

import (
	"nba-player-stats-service/internal/app/players"
	"nba-player-stats-service/internal/domain/stats"
	"nba-player-stats-service/internal/teststubs"
)

// NewServiceWithSnapshot builds a players service backed by a stub cache serving snap.
func NewServiceWithSnapshot(snap *stats.Snapshot) *players.Service {
	return players.NewService(&teststubs.StubCache{Snap: snap})
}

// NewServiceWithError builds a players service whose cache always fails.
func NewServiceWithError(err error) *players.Service {
	return players.NewService(&teststubs.StubCache{Err: err})
}
