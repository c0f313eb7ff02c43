package roster

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

// Canonical column names
const (
	ColSurname        = "SURNAME"
	ColGivenName      = "GIVEN_NAME"
	ColRegistrationID = "REGISTRATION_ID"
	ColYear           = "YEAR"
	ColMonth          = "MONTH"
	ColDay            = "DAY"
)

var requiredColumns = []string{ColSurname, ColGivenName, ColRegistrationID, ColYear, ColMonth, ColDay}

// columnAliases maps alternative (normalized) headers to canonical names.
var columnAliases = map[string]string{
	"NAME":      ColGivenName,
	"NOME":      ColGivenName,
	"COGNOME":   ColSurname,
	"MATRICOLA": ColRegistrationID,
	"TESSERA":   ColRegistrationID,
	"ANNO":      ColYear,
	"MESE":      ColMonth,
	"GIORNO":    ColDay,
}

// Load fetches the source and builds the roster table.
func Load(ctx context.Context, src Source) (*model.RosterTable, error) {
	raw, err := src.FetchRoster(ctx)
	if err != nil {
		return nil, wrapSource(err)
	}
	return Parse(raw, time.Now())
}

func wrapSource(err error) error {
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}

// Parse validates the header and converts every row into a PlayerRecord.
// Any schema, date or row error aborts the whole table.
func Parse(raw *RawTable, fetchedAt time.Time) (*model.RosterTable, error) {
	if raw == nil {
		return nil, &SchemaError{Missing: append([]string(nil), requiredColumns...)}
	}

	colIndex, found := mapColumns(raw.Header)
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Found: found}
	}

	firstRow := raw.FirstRow
	if firstRow == 0 {
		firstRow = 2
	}

	players := make([]model.PlayerRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if isBlankRow(row) {
			continue
		}
		rowNum := firstRow + i
		cell := func(col string) string {
			idx := colIndex[col]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		p := model.PlayerRecord{
			Surname:        cell(ColSurname),
			GivenName:      cell(ColGivenName),
			RegistrationID: cell(ColRegistrationID),
		}
		if p.Surname == "" {
			return nil, &RowError{Row: rowNum, Column: ColSurname}
		}
		if p.GivenName == "" {
			return nil, &RowError{Row: rowNum, Column: ColGivenName}
		}

		dob, err := composeDate(cell(ColYear), cell(ColMonth), cell(ColDay))
		if err != nil {
			return nil, &DateError{Row: rowNum, Year: cell(ColYear), Month: cell(ColMonth), Day: cell(ColDay)}
		}
		p.DateOfBirth = dob.Format("02/01/2006")

		players = append(players, p)
	}

	return model.NewRosterTable(players, fetchedAt, normalize.Surname), nil
}

// mapColumns returns canonical column -> index plus the normalized headers
// actually present. The first occurrence of a column wins.
func mapColumns(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(header))
	found := make([]string, 0, len(header))
	for i, h := range header {
		name := normalize.ColumnName(h)
		if name == "" {
			continue
		}
		found = append(found, name)
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx, found
}

func composeDate(year, month, day string) (time.Time, error) {
	y, err := parseComponent(year)
	if err != nil {
		return time.Time{}, err
	}
	m, err := parseComponent(month)
	if err != nil {
		return time.Time{}, err
	}
	d, err := parseComponent(day)
	if err != nil {
		return time.Time{}, err
	}
	if y < 1 || y > 9999 || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %d-%d-%d", y, m, d)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31/02 into March
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("not a calendar date: %d-%d-%d", y, m, d)
	}
	return t, nil
}

// parseComponent accepts "2005" as well as spreadsheet-style "2005.0".
func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty date component")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-integer date component %q", s)
	}
	return int(f), nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
