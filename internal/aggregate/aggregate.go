package aggregate

import (
	"sort"
	"strings"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/domain/stats"
)

// Game-type labels are free-form in the raw table, so partitioning matches
// lowercase substrings rather than exact values.
const (
	labelPreseason   = "preseason"
	labelRegular     = "regular season"
	labelEmiratesCup = "nba emirates cup"
	labelPlayoffs    = "playoffs"
	labelPlayIn      = "play-in tournament"
)

func isPreseason(gameType string) bool {
	return strings.Contains(strings.ToLower(gameType), labelPreseason)
}

func isRegularSeason(gameType string) bool {
	lt := strings.ToLower(gameType)
	return strings.Contains(lt, labelRegular) || strings.Contains(lt, labelEmiratesCup)
}

func isPlayoffs(gameType string) bool {
	lt := strings.ToLower(gameType)
	return strings.Contains(lt, labelPlayoffs) || strings.Contains(lt, labelPlayIn)
}

// Build folds raw game and bio rows into the queryable stat collection.
// It is pure: the same rows always produce the same collection, inputs are
// never mutated, and empty input yields an empty (non-nil) collection.
//
// Preseason rows are dropped before any stat work. Rows whose game type
// matches neither the regular-season nor the playoff labels (all-star games,
// unrecognized labels) still count toward career numbers, so per player
// career games >= regular games and career games >= playoff games.
func Build(games []boxscore.GameLog, players []boxscore.PlayerInfo) stats.Collection {
	names := distinctNames(games)

	eligible := make([]boxscore.GameLog, 0, len(games))
	for i := range games {
		if !isPreseason(games[i].GameType) {
			eligible = append(eligible, games[i])
		}
	}

	career := make(map[string]*accumulator)
	regular := make(map[string]*accumulator)
	playoffs := make(map[string]*accumulator)
	for i := range eligible {
		g := &eligible[i]
		accumulate(career, g)
		if isRegularSeason(g.GameType) {
			accumulate(regular, g)
		}
		if isPlayoffs(g.GameType) {
			accumulate(playoffs, g)
		}
	}

	var latest time.Time
	for i := range eligible {
		if eligible[i].GameDate.After(latest) {
			latest = eligible[i].GameDate
		}
	}

	current := make(map[string]*accumulator)
	var windowStart time.Time
	if !latest.IsZero() {
		windowStart = seasonStart(latest)
		for i := range eligible {
			g := &eligible[i]
			if !g.GameDate.Before(windowStart) {
				accumulate(current, g)
			}
		}
	}

	// Career spans every eligible row, so ranging over it covers each
	// player present in any partition.
	bios := bioIndex(players)
	aggregates := make(map[string]stats.PlayerAggregate, len(career))
	for name, acc := range career {
		agg := stats.PlayerAggregate{
			Name:          name,
			Career:        acc.group(),
			RegularSeason: regular[name].group(),
			Playoffs:      playoffs[name].group(),
			CurrentSeason: current[name].currentGroup(),
		}
		if bio, ok := bios[name]; ok {
			agg.Bio = &bio
		}
		aggregates[name] = sanitizeAggregate(agg)
	}

	return stats.Collection{
		Aggregates:  aggregates,
		Names:       names,
		SeasonStart: windowStart,
	}
}

// accumulator folds game rows for one player within one partition.
type accumulator struct {
	games  int
	totals stats.StatTotals
}

func accumulate(m map[string]*accumulator, g *boxscore.GameLog) {
	name := g.FullName()
	acc, ok := m[name]
	if !ok {
		acc = &accumulator{}
		m[name] = acc
	}
	acc.add(g)
}

func (a *accumulator) add(g *boxscore.GameLog) {
	a.games++
	a.totals.Points += g.Points
	a.totals.Assists += g.Assists
	a.totals.Rebounds += g.Rebounds
	a.totals.Steals += g.Steals
	a.totals.Blocks += g.Blocks
	a.totals.Turnovers += g.Turnovers
	a.totals.FieldGoalsMade += g.FieldGoalsMade
	a.totals.FieldGoalsAttempted += g.FieldGoalsAttempted
	a.totals.ThreePointersMade += g.ThreePointersMade
	a.totals.ThreePointersAttempted += g.ThreePointersAttempted
	a.totals.FreeThrowsMade += g.FreeThrowsMade
	a.totals.FreeThrowsAttempted += g.FreeThrowsAttempted
}

// group converts the accumulator into a served StatGroup. A nil receiver
// (player absent from the partition) yields the zero group.
func (a *accumulator) group() stats.StatGroup {
	if a == nil {
		return stats.StatGroup{}
	}
	return stats.StatGroup{
		Games:    a.games,
		Totals:   a.totals,
		Averages: a.averages(),
	}
}

func (a *accumulator) currentGroup() stats.CurrentGroup {
	if a == nil {
		return stats.CurrentGroup{}
	}
	return stats.CurrentGroup{
		Games:    a.games,
		Averages: a.averages(),
	}
}

func (a *accumulator) averages() stats.StatAverages {
	n := float64(a.games)
	return stats.StatAverages{
		PointsPerGame:    safeDiv(a.totals.Points, n),
		AssistsPerGame:   safeDiv(a.totals.Assists, n),
		ReboundsPerGame:  safeDiv(a.totals.Rebounds, n),
		StealsPerGame:    safeDiv(a.totals.Steals, n),
		BlocksPerGame:    safeDiv(a.totals.Blocks, n),
		TurnoversPerGame: safeDiv(a.totals.Turnovers, n),
		FieldGoalPct:     pct(a.totals.FieldGoalsMade, a.totals.FieldGoalsAttempted),
		ThreePointPct:    pct(a.totals.ThreePointersMade, a.totals.ThreePointersAttempted),
		FreeThrowPct:     pct(a.totals.FreeThrowsMade, a.totals.FreeThrowsAttempted),
	}
}

func safeDiv(sum, n float64) float64 {
	if n == 0 {
		return 0
	}
	return sum / n
}

func pct(made, attempted float64) float64 {
	if attempted == 0 {
		return 0
	}
	return 100 * made / attempted
}

// bioIndex keys bio rows by full name; the first row wins on duplicates.
func bioIndex(players []boxscore.PlayerInfo) map[string]stats.PlayerBio {
	idx := make(map[string]stats.PlayerBio, len(players))
	for _, p := range players {
		name := p.FullName()
		if _, ok := idx[name]; ok {
			continue
		}
		idx[name] = stats.PlayerBio{
			Position: p.Position(),
			Height:   p.Height,
			Weight:   p.Weight,
		}
	}
	return idx
}

// distinctNames lists every full name seen in the raw game rows, sorted.
// Preseason rows count here even though they carry no aggregate, so the
// list mirrors the raw data rather than the partitioned subset.
func distinctNames(games []boxscore.GameLog) []string {
	seen := make(map[string]struct{}, len(games))
	names := make([]string, 0, len(games)/64+1)
	for i := range games {
		name := games[i].FullName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
