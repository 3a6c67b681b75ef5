package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/myusername/cricket-match-analyzer/pkg/models"
)

// Column names read from the source
const (
	ColID            = "id"
	ColSeason        = "season"
	ColDate          = "date"
	ColTeam1         = "team1"
	ColTeam2         = "team2"
	ColCity          = "city"
	ColVenue         = "venue"
	ColWinner        = "winner"
	ColPlayerOfMatch = "player_of_match"
	ColWinByRuns     = "win_by_runs"
	ColWinByWickets  = "win_by_wickets"
	ColTossWinner    = "toss_winner"
	ColTossDecision  = "toss_decision"
	ColDLApplied     = "dl_applied"
	ColUmpire3       = "umpire3"
)

// RequiredColumns lists the columns every source must provide
var RequiredColumns = []string{
	ColCity,
	ColVenue,
	ColWinner,
	ColPlayerOfMatch,
	ColWinByRuns,
	ColWinByWickets,
	ColTossWinner,
	ColTossDecision,
	ColDLApplied,
}

// droppedColumns are removed during cleaning when present
var droppedColumns = map[string]bool{
	ColUmpire3: true,
}

// nullMarkers are cell contents treated as missing, in addition to the empty string
var nullMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// Cell is a single raw value from the source
type Cell struct {
	Value string
	Valid bool
}

// TextCell converts raw text into a Cell, treating empty and null markers as missing.
// Markers match exactly; padded text such as "NA " is a value.
func TextCell(s string) Cell {
	if s == "" || nullMarkers[s] {
		return Cell{}
	}
	return Cell{Value: s, Valid: true}
}

// Table is an untyped tabular source as read from disk
type Table struct {
	Header []string
	Rows   [][]Cell
}

// Clean validates the required columns, drops unused columns and converts every row
// into a MatchRecord with nullable text columns filled with their sentinel values.
func Clean(t *Table, source string) (*models.Dataset, error) {
	index := make(map[string]int, len(t.Header))
	var columns []string
	for i, name := range t.Header {
		name = normalizeColumnName(name)
		if _, dup := index[name]; dup {
			continue
		}
		index[name] = i
		if !droppedColumns[name] {
			columns = append(columns, name)
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Source: source, Columns: missing}
	}

	ds := &models.Dataset{
		Source:  source,
		Columns: columns,
		Matches: make([]models.MatchRecord, 0, len(t.Rows)),
	}

	for i, row := range t.Rows {
		rowNum := i + 1
		get := func(col string) Cell {
			idx, ok := index[col]
			if !ok || idx >= len(row) {
				return Cell{}
			}
			return row[idx]
		}

		runs, err := parseNullInt(get(ColWinByRuns))
		if err != nil {
			return nil, &CellError{Row: rowNum, Column: ColWinByRuns, Value: get(ColWinByRuns).Value, Err: err}
		}
		wickets, err := parseNullInt(get(ColWinByWickets))
		if err != nil {
			return nil, &CellError{Row: rowNum, Column: ColWinByWickets, Value: get(ColWinByWickets).Value, Err: err}
		}
		dl, err := parseFlag(get(ColDLApplied))
		if err != nil {
			return nil, &CellError{Row: rowNum, Column: ColDLApplied, Value: get(ColDLApplied).Value, Err: err}
		}

		ds.Matches = append(ds.Matches, models.MatchRecord{
			ID:            get(ColID).Value,
			Season:        get(ColSeason).Value,
			Date:          get(ColDate).Value,
			Team1:         get(ColTeam1).Value,
			Team2:         get(ColTeam2).Value,
			City:          fillNull(get(ColCity), models.NoLocation),
			Venue:         get(ColVenue).Value,
			Winner:        fillNull(get(ColWinner), models.NoResult),
			PlayerOfMatch: fillNull(get(ColPlayerOfMatch), models.NotDisclosed),
			WinByRuns:     runs,
			WinByWickets:  wickets,
			TossWinner:    get(ColTossWinner).Value,
			TossDecision:  get(ColTossDecision).Value,
			DLApplied:     dl,
		})
	}

	return ds, nil
}

func normalizeColumnName(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.TrimSpace(name))
}

func fillNull(c Cell, sentinel string) string {
	if !c.Valid {
		return sentinel
	}
	return c.Value
}

var errNotInteger = errors.New("not an integer")

// parseNullInt accepts integers and integral floats ("12", "12.0"); missing cells are invalid
func parseNullInt(c Cell) (models.NullInt, error) {
	if !c.Valid {
		return models.NullInt{}, nil
	}
	s := strings.TrimSpace(c.Value)
	if n, err := strconv.Atoi(s); err == nil {
		return models.Int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.NullInt{}, errNotInteger
	}
	if math.IsNaN(f) {
		return models.NullInt{}, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return models.NullInt{}, errNotInteger
	}
	return models.Int(int(f)), nil
}

// parseFlag reads a 0/1 or true/false flag; a missing flag counts as false
func parseFlag(c Cell) (bool, error) {
	if !c.Valid {
		return false, nil
	}
	s := strings.TrimSpace(c.Value)
	if b, err := strconv.ParseBool(strings.ToLower(s)); err == nil {
		return b, nil
	}
	n, err := parseNullInt(c)
	if err != nil {
		return false, err
	}
	return n.Valid && n.Int != 0, nil
}
