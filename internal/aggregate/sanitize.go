package aggregate

import (
	"math"

	"nba-player-stats-service/internal/domain/stats"
)

// sanitize clamps a stat value for publication: non-finite inputs collapse
// to zero, finite ones round to one decimal place. Running this as the final
// pass keeps NaN/Inf out of every published snapshot even when the raw cells
// carried them.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10) / 10
}

func sanitizeAggregate(agg stats.PlayerAggregate) stats.PlayerAggregate {
	agg.Career = sanitizeGroup(agg.Career)
	agg.RegularSeason = sanitizeGroup(agg.RegularSeason)
	agg.Playoffs = sanitizeGroup(agg.Playoffs)
	agg.CurrentSeason.Averages = sanitizeAverages(agg.CurrentSeason.Averages)
	if agg.Bio != nil {
		bio := *agg.Bio
		bio.Height = sanitize(bio.Height)
		bio.Weight = sanitize(bio.Weight)
		agg.Bio = &bio
	}
	return agg
}

func sanitizeGroup(g stats.StatGroup) stats.StatGroup {
	g.Totals = sanitizeTotals(g.Totals)
	g.Averages = sanitizeAverages(g.Averages)
	return g
}

func sanitizeTotals(t stats.StatTotals) stats.StatTotals {
	t.Points = sanitize(t.Points)
	t.Assists = sanitize(t.Assists)
	t.Rebounds = sanitize(t.Rebounds)
	t.Steals = sanitize(t.Steals)
	t.Blocks = sanitize(t.Blocks)
	t.Turnovers = sanitize(t.Turnovers)
	t.FieldGoalsMade = sanitize(t.FieldGoalsMade)
	t.FieldGoalsAttempted = sanitize(t.FieldGoalsAttempted)
	t.ThreePointersMade = sanitize(t.ThreePointersMade)
	t.ThreePointersAttempted = sanitize(t.ThreePointersAttempted)
	t.FreeThrowsMade = sanitize(t.FreeThrowsMade)
	t.FreeThrowsAttempted = sanitize(t.FreeThrowsAttempted)
	return t
}

func sanitizeAverages(a stats.StatAverages) stats.StatAverages {
	a.PointsPerGame = sanitize(a.PointsPerGame)
	a.AssistsPerGame = sanitize(a.AssistsPerGame)
	a.ReboundsPerGame = sanitize(a.ReboundsPerGame)
	a.StealsPerGame = sanitize(a.StealsPerGame)
	a.BlocksPerGame = sanitize(a.BlocksPerGame)
	a.TurnoversPerGame = sanitize(a.TurnoversPerGame)
	a.FieldGoalPct = sanitize(a.FieldGoalPct)
	a.ThreePointPct = sanitize(a.ThreePointPct)
	a.FreeThrowPct = sanitize(a.FreeThrowPct)
	return a
}
