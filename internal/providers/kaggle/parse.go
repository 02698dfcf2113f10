package kaggle

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"nba-player-stats-service/internal/domain/boxscore"
	"nba-player-stats-service/internal/providers"
)

// Column names as they appear in the upstream tables.
const (
	colFirstName = "firstName"
	colLastName  = "lastName"
	colGameDate  = "gameDate"
	colGameType  = "gameType"
	colPoints    = "points"
	colAssists   = "assists"
	colRebounds  = "reboundsTotal"
	colSteals    = "steals"
	colBlocks    = "blocks"
	colTurnovers = "turnovers"
	colFGM       = "fieldGoalsMade"
	colFGA       = "fieldGoalsAttempted"
	col3PM       = "threePointersMade"
	col3PA       = "threePointersAttempted"
	colFTM       = "freeThrowsMade"
	colFTA       = "freeThrowsAttempted"

	colGuard   = "guard"
	colForward = "forward"
	colCenter  = "center"
	colHeight  = "height"
	colWeight  = "bodyWeight"
)

var gameLogColumns = []string{
	colFirstName, colLastName, colGameDate, colGameType,
	colPoints, colAssists, colRebounds, colSteals, colBlocks, colTurnovers,
	colFGM, colFGA, col3PM, col3PA, colFTM, colFTA,
}

var playerColumns = []string{
	colFirstName, colLastName, colGuard, colForward, colCenter, colHeight, colWeight,
}

// The upstream export has shipped more than one timestamp style.
var gameDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// parseGameLogs decodes the game-log table into typed rows.
func parseGameLogs(file string, raw []byte) ([]boxscore.GameLog, error) {
	reader := newTableReader(raw)
	header, err := reader.Read()
	if err != nil {
		return nil, &providers.SchemaError{File: file, Detail: "missing header row"}
	}
	idx, err := headerIndex(file, header, gameLogColumns)
	if err != nil {
		return nil, err
	}

	logs := make([]boxscore.GameLog, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &providers.SchemaError{File: file, Detail: err.Error()}
		}
		if len(record) < len(header) {
			continue
		}

		date, err := parseGameDate(record[idx[colGameDate]])
		if err != nil {
			return nil, &providers.SchemaError{
				File:   file,
				Detail: fmt.Sprintf("unparseable game date %q", record[idx[colGameDate]]),
			}
		}

		logs = append(logs, boxscore.GameLog{
			FirstName:              record[idx[colFirstName]],
			LastName:               record[idx[colLastName]],
			GameDate:               date,
			GameType:               record[idx[colGameType]],
			Points:                 parseStat(record[idx[colPoints]]),
			Assists:                parseStat(record[idx[colAssists]]),
			Rebounds:               parseStat(record[idx[colRebounds]]),
			Steals:                 parseStat(record[idx[colSteals]]),
			Blocks:                 parseStat(record[idx[colBlocks]]),
			Turnovers:              parseStat(record[idx[colTurnovers]]),
			FieldGoalsMade:         parseStat(record[idx[colFGM]]),
			FieldGoalsAttempted:    parseStat(record[idx[colFGA]]),
			ThreePointersMade:      parseStat(record[idx[col3PM]]),
			ThreePointersAttempted: parseStat(record[idx[col3PA]]),
			FreeThrowsMade:         parseStat(record[idx[colFTM]]),
			FreeThrowsAttempted:    parseStat(record[idx[colFTA]]),
		})
	}
	return logs, nil
}

// parsePlayers decodes the bio table into typed rows.
func parsePlayers(file string, raw []byte) ([]boxscore.PlayerInfo, error) {
	reader := newTableReader(raw)
	header, err := reader.Read()
	if err != nil {
		return nil, &providers.SchemaError{File: file, Detail: "missing header row"}
	}
	idx, err := headerIndex(file, header, playerColumns)
	if err != nil {
		return nil, err
	}

	players := make([]boxscore.PlayerInfo, 0, 1024)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &providers.SchemaError{File: file, Detail: err.Error()}
		}
		if len(record) < len(header) {
			continue
		}

		players = append(players, boxscore.PlayerInfo{
			FirstName: record[idx[colFirstName]],
			LastName:  record[idx[colLastName]],
			Guard:     parseFlag(record[idx[colGuard]]),
			Forward:   parseFlag(record[idx[colForward]]),
			Center:    parseFlag(record[idx[colCenter]]),
			Height:    parseStat(record[idx[colHeight]]),
			Weight:    parseStat(record[idx[colWeight]]),
		})
	}
	return players, nil
}

func newTableReader(raw []byte) *csv.Reader {
	reader := csv.NewReader(bytes.NewReader(raw))
	// Short rows are skipped by the caller instead of failing the fetch.
	reader.FieldsPerRecord = -1
	return reader
}

// headerIndex maps column names to positions, reporting every missing
// required column at once.
func headerIndex(file string, header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &providers.SchemaError{
			File:   file,
			Detail: "missing columns: " + strings.Join(missing, ", "),
		}
	}
	return idx, nil
}

func parseGameDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// parseStat coerces a numeric cell; blank or malformed cells count as zero
// so one dirty cell cannot abort a whole refresh.
func parseStat(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
