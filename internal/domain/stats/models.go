package stats

import "time"

// StatTotals holds the summed counting stats for one partition of a
// player's games.
type StatTotals struct {
	Points                 float64 `json:"points"`
	Assists                float64 `json:"assists"`
	Rebounds               float64 `json:"rebounds"`
	Steals                 float64 `json:"steals"`
	Blocks                 float64 `json:"blocks"`
	Turnovers              float64 `json:"turnovers"`
	FieldGoalsMade         float64 `json:"fieldGoalsMade"`
	FieldGoalsAttempted    float64 `json:"fieldGoalsAttempted"`
	ThreePointersMade      float64 `json:"threePointersMade"`
	ThreePointersAttempted float64 `json:"threePointersAttempted"`
	FreeThrowsMade         float64 `json:"freeThrowsMade"`
	FreeThrowsAttempted    float64 `json:"freeThrowsAttempted"`
}

// StatAverages holds per-game averages plus shooting percentages.
// Percentages are 0-100; zero attempts report 0 rather than dividing.
type StatAverages struct {
	PointsPerGame    float64 `json:"pointsPerGame"`
	AssistsPerGame   float64 `json:"assistsPerGame"`
	ReboundsPerGame  float64 `json:"reboundsPerGame"`
	StealsPerGame    float64 `json:"stealsPerGame"`
	BlocksPerGame    float64 `json:"blocksPerGame"`
	TurnoversPerGame float64 `json:"turnoversPerGame"`
	FieldGoalPct     float64 `json:"fieldGoalPct"`
	ThreePointPct    float64 `json:"threePointPct"`
	FreeThrowPct     float64 `json:"freeThrowPct"`
}

// StatGroup is one partition (career, regular season, playoffs) of a
// player's games.
type StatGroup struct {
	Games    int          `json:"games"`
	Totals   StatTotals   `json:"totals"`
	Averages StatAverages `json:"averages"`
}

// CurrentGroup covers the in-progress season; only games played and
// averages are tracked for it.
type CurrentGroup struct {
	Games    int          `json:"games"`
	Averages StatAverages `json:"averages"`
}

// PlayerBio carries the bio fields joined from the player table.
type PlayerBio struct {
	Position string  `json:"position"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
}

// PlayerAggregate is the full queryable stat line for one player. Bio is
// nil when no bio row matched the player's name.
type PlayerAggregate struct {
	Name          string       `json:"name"`
	Career        StatGroup    `json:"career"`
	RegularSeason StatGroup    `json:"regularSeason"`
	Playoffs      StatGroup    `json:"playoffs"`
	CurrentSeason CurrentGroup `json:"currentSeason"`
	Bio           *PlayerBio   `json:"bio,omitempty"`
}

// Collection is the aggregation output: every aggregate keyed by canonical
// full name, the sorted distinct name list from the raw game rows, and the
// Oct 1 boundary of the season treated as current (zero when no rows).
type Collection struct {
	Aggregates  map[string]PlayerAggregate
	Names       []string
	SeasonStart time.Time
}

// Snapshot is one cached generation of the collection. Snapshots are
// immutable once published; a refresh builds a new one and swaps it in
// wholesale, so readers never observe partial data.
type Snapshot struct {
	Collection
	FetchedAt time.Time
	ID        string
}

// Comparison pairs two aggregates for the compare endpoint. The JSON keys
// mirror the request fields.
type Comparison struct {
	Player1 PlayerAggregate `json:"player1"`
	Player2 PlayerAggregate `json:"player2"`
}
