package roster

import (
	"fmt"
	"strings"
)

// SchemaError the source lacks required columns; no roster is produced.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("roster schema: missing columns [%s], found [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// DateError YEAR/MONTH/DAY of a row do not form a calendar date.
// The whole load fails on the first such row.
type DateError struct {
	Row   int
	Year  string
	Month string
	Day   string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("roster row %d: invalid date of birth (year=%q month=%q day=%q)",
		e.Row, e.Year, e.Month, e.Day)
}

// RowError a row carries an empty surname or given name.
type RowError struct {
	Row    int
	Column string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("roster row %d: empty %s", e.Row, e.Column)
}
