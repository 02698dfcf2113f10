package testutil

import (
	"nba-player-stats-service/internal/domain/stats"
)

// SampleAggregate returns a compact aggregate fixture for the given player.
func SampleAggregate(name string) stats.PlayerAggregate {
	return stats.PlayerAggregate{
		Name: name,
		Career: stats.StatGroup{
			Games:    2,
			Totals:   stats.StatTotals{Points: 58, Rebounds: 16, Assists: 14},
			Averages: stats.StatAverages{PointsPerGame: 29, ReboundsPerGame: 8, AssistsPerGame: 7},
		},
		RegularSeason: stats.StatGroup{
			Games:    2,
			Totals:   stats.StatTotals{Points: 58, Rebounds: 16, Assists: 14},
			Averages: stats.StatAverages{PointsPerGame: 29, ReboundsPerGame: 8, AssistsPerGame: 7},
		},
		CurrentSeason: stats.CurrentGroup{
			Games:    1,
			Averages: stats.StatAverages{PointsPerGame: 30, ReboundsPerGame: 9, AssistsPerGame: 6},
		},
		Bio: &stats.PlayerBio{Position: "Forward", Height: 81, Weight: 250},
	}
}

// SampleSnapshot builds a snapshot with two resolvable players plus one
// listed name that carries no aggregate.
func SampleSnapshot() *stats.Snapshot {
	return &stats.Snapshot{
		Collection: stats.Collection{
			Aggregates: map[string]stats.PlayerAggregate{
				"LeBron James":  SampleAggregate("LeBron James"),
				"Stephen Curry": SampleAggregate("Stephen Curry"),
			},
			Names:       []string{"Alex Young", "LeBron James", "Stephen Curry"},
			SeasonStart: MustParseRFC3339("2024-10-01T00:00:00Z"),
		},
		FetchedAt: MustParseRFC3339("2025-01-15T12:00:00Z"),
		ID:        "snap-fixture",
	}
}
