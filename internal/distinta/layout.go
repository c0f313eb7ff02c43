package distinta

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Metadata field keys of Layout.Fields
const (
	FieldTeam        = "team"
	FieldMatch       = "match"
	FieldDate        = "date"
	FieldVenue       = "venue"
	FieldCompetition = "competition"
)

// MaxPlayers rows reserved for players on the team sheet
const MaxPlayers = 20

// Layout fixed cell coordinates of the team sheet. It is part of the
// template contract: the populator never derives coordinates at runtime.
type Layout struct {
	Sheet              string            `toml:"sheet"`
	Fields             map[string]string `toml:"fields"`
	FirstPlayerRow     int               `toml:"first_player_row"`
	NameColumn         string            `toml:"name_column"`
	RegistrationColumn string            `toml:"registration_column"`
	BirthDateColumn    string            `toml:"birth_date_column"`
	MaxPlayers         int               `toml:"max_players"`
	AmbiguousMarker    string            `toml:"ambiguous_marker"`
	NotFoundMarker     string            `toml:"not_found_marker"`
}

// DefaultLayout matches the sheet built by DefaultTemplate.
//
//	A3:B7   labels and metadata values
//	A9:D9   player header
//	A10:D29 player rows (number, full name, registration id, date of birth)
func DefaultLayout() Layout {
	return Layout{
		Sheet: "DISTINTA",
		Fields: map[string]string{
			FieldTeam:        "B3",
			FieldMatch:       "B4",
			FieldDate:        "B5",
			FieldVenue:       "B6",
			FieldCompetition: "B7",
		},
		FirstPlayerRow:     10,
		NameColumn:         "B",
		RegistrationColumn: "C",
		BirthDateColumn:    "D",
		MaxPlayers:         MaxPlayers,
		AmbiguousMarker:    "AMBIGUOUS",
		NotFoundMarker:     "NOT IN DATABASE",
	}
}

// fieldOrder is the order metadata cells are written in.
var fieldOrder = []string{FieldTeam, FieldMatch, FieldDate, FieldVenue, FieldCompetition}

func knownField(name string) bool {
	for _, f := range fieldOrder {
		if f == name {
			return true
		}
	}
	return false
}

// Merge overlays the non-zero values of o on l.
func (l Layout) Merge(o Layout) Layout {
	out := l
	out.Fields = make(map[string]string, len(l.Fields))
	for k, v := range l.Fields {
		out.Fields[k] = v
	}
	for k, v := range o.Fields {
		out.Fields[strings.ToLower(k)] = strings.ToUpper(strings.TrimSpace(v))
	}
	if o.Sheet != "" {
		out.Sheet = o.Sheet
	}
	if o.FirstPlayerRow > 0 {
		out.FirstPlayerRow = o.FirstPlayerRow
	}
	if o.NameColumn != "" {
		out.NameColumn = strings.ToUpper(o.NameColumn)
	}
	if o.RegistrationColumn != "" {
		out.RegistrationColumn = strings.ToUpper(o.RegistrationColumn)
	}
	if o.BirthDateColumn != "" {
		out.BirthDateColumn = strings.ToUpper(o.BirthDateColumn)
	}
	if o.MaxPlayers > 0 {
		out.MaxPlayers = o.MaxPlayers
	}
	if o.AmbiguousMarker != "" {
		out.AmbiguousMarker = o.AmbiguousMarker
	}
	if o.NotFoundMarker != "" {
		out.NotFoundMarker = o.NotFoundMarker
	}
	return out
}

// Validate checks every coordinate, that metadata cells stay outside the
// player region and that the player region keeps its MaxPlayers rows.
func (l Layout) Validate() error {
	if strings.TrimSpace(l.Sheet) == "" {
		return fmt.Errorf("layout: sheet name is empty")
	}
	if l.FirstPlayerRow < 1 {
		return fmt.Errorf("layout: first_player_row must be >= 1")
	}
	if l.MaxPlayers != MaxPlayers {
		return fmt.Errorf("layout: max_players is fixed at %d, got %d", MaxPlayers, l.MaxPlayers)
	}

	cols := make(map[int]bool, 3)
	for _, c := range []string{l.NameColumn, l.RegistrationColumn, l.BirthDateColumn} {
		n, err := excelize.ColumnNameToNumber(c)
		if err != nil {
			return fmt.Errorf("layout: player column %q: %w", c, err)
		}
		if cols[n] {
			return fmt.Errorf("layout: player column %q used twice", c)
		}
		cols[n] = true
	}

	lastRow := l.FirstPlayerRow + l.MaxPlayers - 1
	for field, cell := range l.Fields {
		if !knownField(field) {
			return fmt.Errorf("layout: unknown field %q (known: %s)", field, strings.Join(fieldOrder, ", "))
		}
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return fmt.Errorf("layout: field %s cell %q: %w", field, cell, err)
		}
		if cols[col] && row >= l.FirstPlayerRow && row <= lastRow {
			return fmt.Errorf("layout: field %s cell %s overlaps the player rows", field, cell)
		}
	}
	return nil
}

// PlayerCells returns the three cells of the i-th (0-based) player row.
func (l Layout) PlayerCells(i int) (name, registration, birthDate string, err error) {
	row := l.FirstPlayerRow + i
	if name, err = excelize.JoinCellName(l.NameColumn, row); err != nil {
		return "", "", "", err
	}
	if registration, err = excelize.JoinCellName(l.RegistrationColumn, row); err != nil {
		return "", "", "", err
	}
	if birthDate, err = excelize.JoinCellName(l.BirthDateColumn, row); err != nil {
		return "", "", "", err
	}
	return name, registration, birthDate, nil
}
