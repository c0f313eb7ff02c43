package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rosterHeader = []string{"SURNAME", "NAME", "REGISTRATION_ID", "YEAR", "MONTH", "DAY"}

func TestParse_FormatsDateOfBirth(t *testing.T) {
	raw := &RawTable{
		Header: rosterHeader,
		Rows: [][]string{
			{"ROSSI", "MARIO", "123", "2005", "4", "10"},
			{" Bianchi ", " Luca ", "456", "2006.0", "12", "01"},
		},
	}

	table, err := Parse(raw, time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, "ROSSI", table.Players[0].Surname)
	assert.Equal(t, "MARIO", table.Players[0].GivenName)
	assert.Equal(t, "123", table.Players[0].RegistrationID)
	assert.Equal(t, "10/04/2005", table.Players[0].DateOfBirth)

	assert.Equal(t, "Bianchi", table.Players[1].Surname)
	assert.Equal(t, "Luca", table.Players[1].GivenName)
	assert.Equal(t, "01/12/2006", table.Players[1].DateOfBirth)

	assert.Len(t, table.Lookup("BIANCHI"), 1)
	assert.Empty(t, table.Lookup("Bianchi"))
}

func TestParse_HeaderNormalizationAndAliases(t *testing.T) {
	raw := &RawTable{
		Header: []string{" cognome", "Nome ", "matricola", "anno", "mese", "giorno", "note"},
		Rows:   [][]string{{"VERDI", "ANNA", "9", "1999", "2", "28", "x"}},
	}

	table, err := Parse(raw, time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "28/02/1999", table.Players[0].DateOfBirth)
	assert.Equal(t, "9", table.Players[0].RegistrationID)
}

func TestParse_CanonicalGivenNameColumn(t *testing.T) {
	raw := &RawTable{
		Header: []string{"surname", "given name", "registration id", "year", "month", "day"},
		Rows:   [][]string{{"NERI", "PAOLO", "77", "2010", "1", "1"}},
	}

	table, err := Parse(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "PAOLO", table.Players[0].GivenName)
}

func TestParse_MissingColumns(t *testing.T) {
	raw := &RawTable{
		Header: []string{"SURNAME", "NAME", "YEAR"},
		Rows:   [][]string{{"ROSSI", "MARIO", "2005"}},
	}

	table, err := Parse(raw, time.Now())
	require.Error(t, err)
	assert.Nil(t, table)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{ColRegistrationID, ColMonth, ColDay}, schemaErr.Missing)
	assert.Equal(t, []string{"SURNAME", "NAME", "YEAR"}, schemaErr.Found)
}

func TestParse_InvalidDateFailsWholeLoad(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		day   string
	}{
		{"feb 31", "2005", "2", "31"},
		{"month 13", "2005", "13", "1"},
		{"not a number", "2005", "aprile", "1"},
		{"empty day", "2005", "4", ""},
		{"fractional", "2005", "4.5", "1"},
		{"non leap year", "2005", "2", "29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &RawTable{
				Header: rosterHeader,
				Rows: [][]string{
					{"ROSSI", "MARIO", "123", "2005", "4", "10"},
					{"VERDI", "ANNA", "124", tt.year, tt.month, tt.day},
				},
			}
			table, err := Parse(raw, time.Now())
			assert.Nil(t, table)

			var dateErr *DateError
			require.True(t, errors.As(err, &dateErr), "got %v", err)
			assert.Equal(t, 3, dateErr.Row)
		})
	}
}

func TestParse_LeapDay(t *testing.T) {
	raw := &RawTable{
		Header: rosterHeader,
		Rows:   [][]string{{"ROSSI", "MARIO", "123", "2004", "2", "29"}},
	}
	table, err := Parse(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "29/02/2004", table.Players[0].DateOfBirth)
}

func TestParse_SkipsBlankRowsAndRejectsEmptyNames(t *testing.T) {
	raw := &RawTable{
		Header: rosterHeader,
		Rows: [][]string{
			{"ROSSI", "MARIO", "123", "2005", "4", "10"},
			{"", " ", ""},
			{},
		},
	}
	table, err := Parse(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	raw.Rows = append(raw.Rows, []string{"  ", "LUCA", "1", "2000", "1", "1"})
	_, err = Parse(raw, time.Now())
	var rowErr *RowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 5, rowErr.Row)
	assert.Equal(t, ColSurname, rowErr.Column)
}

func TestLoad_WrapsSourceFailure(t *testing.T) {
	_, err := Load(context.Background(), failingSource{err: errors.New("boom")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLoad_StaticSource(t *testing.T) {
	src := &StaticSource{Table: RawTable{
		Header: rosterHeader,
		Rows:   [][]string{{"ROSSI", "MARIO", "123", "2005", "4", "10"}},
	}}
	table, err := Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, table.Lookup("ROSSI"), 1)
	assert.Equal(t, "10/04/2005", table.Lookup("ROSSI")[0].DateOfBirth)
}

type failingSource struct{ err error }

func (f failingSource) FetchRoster(context.Context) (*RawTable, error) { return nil, f.err }
