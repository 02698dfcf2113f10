package players

import (
	"context"
	"strings"

	"nba-player-stats-service/internal/domain/stats"
)

// Cache supplies the current statistics snapshot.
type Cache interface {
	Snapshot(ctx context.Context) (*stats.Snapshot, error)
}

// Service answers player statistics queries against the cached snapshot.
type Service struct {
	cache Cache
}

// NewService constructs a Service with the provided Cache.
func NewService(cache Cache) *Service {
	return &Service{cache: cache}
}

// Names returns the snapshot's sorted distinct player names.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Names, nil
}

// Stats returns the aggregate for a player. The bool reports whether the
// player exists in the snapshot.
func (s *Service) Stats(ctx context.Context, name string) (stats.PlayerAggregate, bool, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return stats.PlayerAggregate{}, false, err
	}

	agg, ok := lookup(snap, name)
	return agg, ok, nil
}

// Compare resolves both players against the same snapshot so the two sides
// can never mix dataset versions. The bool is false when either is missing.
func (s *Service) Compare(ctx context.Context, first, second string) (stats.Comparison, bool, error) {
	snap, err := s.cache.Snapshot(ctx)
	if err != nil {
		return stats.Comparison{}, false, err
	}

	left, ok := lookup(snap, first)
	if !ok {
		return stats.Comparison{}, false, nil
	}
	right, ok := lookup(snap, second)
	if !ok {
		return stats.Comparison{}, false, nil
	}
	return stats.Comparison{Player1: left, Player2: right}, true, nil
}

// lookup resolves a requested name against the snapshot's name list, then
// keys the aggregate by the canonical stored name. A name that only appears
// in preseason rows is listed but carries no aggregate, so it misses here.
func lookup(snap *stats.Snapshot, requested string) (stats.PlayerAggregate, bool) {
	want := normalizeName(requested)
	if want == "" {
		return stats.PlayerAggregate{}, false
	}

	for _, candidate := range snap.Names {
		if normalizeName(candidate) != want {
			continue
		}
		agg, ok := snap.Aggregates[candidate]
		return agg, ok
	}
	return stats.PlayerAggregate{}, false
}

// normalizeName lowercases and strips all whitespace so "LeBron James",
// "lebron james" and "LeBronJames" resolve to the same player.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
