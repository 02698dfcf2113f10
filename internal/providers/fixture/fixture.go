package fixture

import (
	"context"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
)

// Provider returns a static dataset useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchDataset returns a deterministic dataset. Game dates are anchored to the
// time source so the sample always carries current-season rows alongside a
// prior postseason and a preseason game.
func (p *Provider) FetchDataset(ctx context.Context) (boxscore.Dataset, error) {
	_ = ctx

	anchor := p.now().UTC().Truncate(24 * time.Hour)
	lastSeason := anchor.AddDate(-1, 0, 0)

	games := []boxscore.GameLog{
		{
			FirstName: "Jane", LastName: "Doe",
			GameDate: anchor.AddDate(0, 0, -3), GameType: "Regular Season",
			Points: 28, Assists: 7, Rebounds: 5, Steals: 2, Blocks: 1, Turnovers: 3,
			FieldGoalsMade: 10, FieldGoalsAttempted: 19,
			ThreePointersMade: 4, ThreePointersAttempted: 9,
			FreeThrowsMade: 4, FreeThrowsAttempted: 5,
		},
		{
			FirstName: "Jane", LastName: "Doe",
			GameDate: anchor.AddDate(0, 0, -1), GameType: "Regular Season",
			Points: 24, Assists: 9, Rebounds: 4, Steals: 1, Blocks: 0, Turnovers: 2,
			FieldGoalsMade: 9, FieldGoalsAttempted: 17,
			ThreePointersMade: 2, ThreePointersAttempted: 6,
			FreeThrowsMade: 4, FreeThrowsAttempted: 4,
		},
		{
			FirstName: "Jane", LastName: "Doe",
			GameDate: lastSeason, GameType: "Playoffs",
			Points: 30, Assists: 8, Rebounds: 6, Steals: 3, Blocks: 1, Turnovers: 4,
			FieldGoalsMade: 11, FieldGoalsAttempted: 22,
			ThreePointersMade: 3, ThreePointersAttempted: 8,
			FreeThrowsMade: 5, FreeThrowsAttempted: 6,
		},
		{
			FirstName: "Jane", LastName: "Doe",
			GameDate: anchor.AddDate(0, 0, -20), GameType: "Preseason",
			Points: 12, Assists: 2, Rebounds: 3, Steals: 0, Blocks: 0, Turnovers: 1,
			FieldGoalsMade: 5, FieldGoalsAttempted: 9,
			ThreePointersMade: 1, ThreePointersAttempted: 3,
			FreeThrowsMade: 1, FreeThrowsAttempted: 2,
		},
		{
			FirstName: "John", LastName: "Smith",
			GameDate: anchor.AddDate(0, 0, -2), GameType: "NBA Emirates Cup",
			Points: 22, Assists: 3, Rebounds: 9, Steals: 1, Blocks: 2, Turnovers: 1,
			FieldGoalsMade: 9, FieldGoalsAttempted: 15,
			ThreePointersMade: 1, ThreePointersAttempted: 3,
			FreeThrowsMade: 3, FreeThrowsAttempted: 4,
		},
		{
			FirstName: "John", LastName: "Smith",
			GameDate: anchor.AddDate(0, 0, -4), GameType: "Regular Season",
			Points: 18, Assists: 4, Rebounds: 11, Steals: 0, Blocks: 3, Turnovers: 2,
			FieldGoalsMade: 7, FieldGoalsAttempted: 14,
			ThreePointersMade: 0, ThreePointersAttempted: 2,
			FreeThrowsMade: 4, FreeThrowsAttempted: 6,
		},
		{
			FirstName: "John", LastName: "Smith",
			GameDate: lastSeason.AddDate(0, 0, 10), GameType: "Play-In Tournament",
			Points: 26, Assists: 5, Rebounds: 12, Steals: 2, Blocks: 2, Turnovers: 3,
			FieldGoalsMade: 10, FieldGoalsAttempted: 18,
			ThreePointersMade: 2, ThreePointersAttempted: 4,
			FreeThrowsMade: 4, FreeThrowsAttempted: 4,
		},
		{
			FirstName: "Alex", LastName: "Young",
			GameDate: anchor.AddDate(0, 0, -21), GameType: "Preseason",
			Points: 9, Assists: 1, Rebounds: 2, Steals: 1, Blocks: 0, Turnovers: 2,
			FieldGoalsMade: 4, FieldGoalsAttempted: 10,
			ThreePointersMade: 0, ThreePointersAttempted: 1,
			FreeThrowsMade: 1, FreeThrowsAttempted: 1,
		},
	}

	players := []boxscore.PlayerInfo{
		{FirstName: "Jane", LastName: "Doe", Guard: true, Height: 73, Weight: 168},
		{FirstName: "John", LastName: "Smith", Forward: true, Height: 81, Weight: 242},
	}

	return boxscore.Dataset{Games: games, Players: players}, nil
}
