package teststubs

import (
	"context"
	"sync/atomic"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/domain/stats"
)

// StubProvider is a test double for providers.DatasetProvider.
type StubProvider struct {
	Dataset boxscore.Dataset
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchDataset returns the configured dataset and error while tracking calls.
func (s *StubProvider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return boxscore.Dataset{}, s.Err
	}
	return s.Dataset, nil
}

// SampleDataset returns a small deterministic dataset covering every game
// type partition plus a bio row.
func SampleDataset() boxscore.Dataset {
	nov := time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)
	return boxscore.Dataset{
		Games: []boxscore.GameLog{
			{
				FirstName: "LeBron", LastName: "James",
				GameDate: nov, GameType: "Regular Season",
				Points: 30, Assists: 8, Rebounds: 9,
				FieldGoalsMade: 12, FieldGoalsAttempted: 20,
			},
			{
				FirstName: "LeBron", LastName: "James",
				GameDate: nov.AddDate(0, 0, 2), GameType: "Playoffs",
				Points: 35, Assists: 10, Rebounds: 11,
				FieldGoalsMade: 14, FieldGoalsAttempted: 24,
			},
			{
				FirstName: "LeBron", LastName: "James",
				GameDate: nov.AddDate(0, -1, 0), GameType: "Preseason",
				Points: 12,
			},
			{
				FirstName: "Stephen", LastName: "Curry",
				GameDate: nov.AddDate(0, 0, 1), GameType: "Regular Season",
				Points: 28, Assists: 6, Rebounds: 5,
				ThreePointersMade: 6, ThreePointersAttempted: 12,
			},
		},
		Players: []boxscore.PlayerInfo{
			{FirstName: "LeBron", LastName: "James", Forward: true, Height: 81, Weight: 250},
			{FirstName: "Stephen", LastName: "Curry", Guard: true, Height: 74, Weight: 185},
		},
	}
}

// StubRefresher is a test double for the cache refresh dependency of the
// admin handler.
type StubRefresher struct {
	Snap  *stats.Snapshot
	Err   error
	Calls atomic.Int32
}

// Refresh returns the configured snapshot and error while tracking calls.
func (s *StubRefresher) Refresh(ctx context.Context) (*stats.Snapshot, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Snap, nil
}

// StubCache is a test double for the snapshot cache used by the query layer
// and the warmer.
type StubCache struct {
	Snap         *stats.Snapshot
	Err          error
	Calls        atomic.Int32
	RefreshCalls atomic.Int32
	Notify       chan struct{}
}

// Snapshot returns the configured snapshot and error while tracking calls.
func (s *StubCache) Snapshot(ctx context.Context) (*stats.Snapshot, error) {
	_ = ctx
	s.notify()
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Snap, nil
}

// Refresh mirrors Snapshot but tracks forced reloads separately.
func (s *StubCache) Refresh(ctx context.Context) (*stats.Snapshot, error) {
	_ = ctx
	s.notify()
	s.RefreshCalls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Snap, nil
}

// Peek returns the configured snapshot without counting a read.
func (s *StubCache) Peek() *stats.Snapshot {
	return s.Snap
}

func (s *StubCache) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}
