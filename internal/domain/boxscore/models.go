package boxscore

import (
	"strings"
	"time"
)

// GameLog is one player's stat line from one game, as read from the raw
// game-log table. Counting stats stay float64 end to end because the raw
// cells are decimal and downstream averages divide them anyway.
type GameLog struct {
	FirstName string
	LastName  string
	GameDate  time.Time
	GameType  string

	Points                 float64
	Assists                float64
	Rebounds               float64
	Steals                 float64
	Blocks                 float64
	Turnovers              float64
	FieldGoalsMade         float64
	FieldGoalsAttempted    float64
	ThreePointersMade      float64
	ThreePointersAttempted float64
	FreeThrowsMade         float64
	FreeThrowsAttempted    float64
}

// FullName joins first and last name with a single space. Distinct players
// sharing a full name collapse onto one key (known dataset limitation).
func (g GameLog) FullName() string {
	return joinName(g.FirstName, g.LastName)
}

// PlayerInfo is one row of the player bio table.
type PlayerInfo struct {
	FirstName string
	LastName  string
	Guard     bool
	Forward   bool
	Center    bool
	Height    float64 // inches
	Weight    float64 // pounds
}

// FullName joins first and last name with a single space.
func (p PlayerInfo) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

// Position derives a coarse position label from the bio flags. Multi-position
// players resolve guard first, then forward, then center.
func (p PlayerInfo) Position() string {
	switch {
	case p.Guard:
		return "G"
	case p.Forward:
		return "F"
	case p.Center:
		return "C"
	default:
		return "Unknown"
	}
}

// Dataset bundles the two raw tables a provider returns.
type Dataset struct {
	Games   []GameLog
	Players []PlayerInfo
}

func joinName(first, last string) string {
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}
