package distinta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutIsValid(t *testing.T) {
	layout := DefaultLayout()
	require.NoError(t, layout.Validate())
	assert.Equal(t, 20, layout.MaxPlayers)

	name, reg, dob, err := layout.PlayerCells(19)
	require.NoError(t, err)
	assert.Equal(t, "B29", name)
	assert.Equal(t, "C29", reg)
	assert.Equal(t, "D29", dob)
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
	}{
		{"empty sheet", func(l *Layout) { l.Sheet = " " }},
		{"bad column", func(l *Layout) { l.NameColumn = "1" }},
		{"duplicate column", func(l *Layout) { l.BirthDateColumn = l.NameColumn }},
		{"bad field cell", func(l *Layout) { l.Fields[FieldTeam] = "ZZ" }},
		{"field inside player rows", func(l *Layout) { l.Fields[FieldVenue] = "C12" }},
		{"no players", func(l *Layout) { l.MaxPlayers = 0 }},
		{"more players", func(l *Layout) { l.MaxPlayers = 25 }},
		{"fewer players", func(l *Layout) { l.MaxPlayers = 11 }},
		{"unknown field", func(l *Layout) { l.Fields["tema"] = "F3" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := DefaultLayout()
			tt.mutate(&layout)
			assert.Error(t, layout.Validate())
		})
	}
}

func TestLayoutMerge(t *testing.T) {
	base := DefaultLayout()
	merged := base.Merge(Layout{
		Sheet:          "Foglio1",
		Fields:         map[string]string{"Team": " e2 "},
		FirstPlayerRow: 12,
		NotFoundMarker: "NON IN DB",
	})

	assert.Equal(t, "Foglio1", merged.Sheet)
	assert.Equal(t, "E2", merged.Fields[FieldTeam])
	assert.Equal(t, "B4", merged.Fields[FieldMatch])
	assert.Equal(t, 12, merged.FirstPlayerRow)
	assert.Equal(t, "NON IN DB", merged.NotFoundMarker)
	assert.Equal(t, "AMBIGUOUS", merged.AmbiguousMarker)
	// base is left untouched
	assert.Equal(t, "B3", base.Fields[FieldTeam])
}

func TestLayoutMerge_CannotLiftPlayerCap(t *testing.T) {
	merged := DefaultLayout().Merge(Layout{MaxPlayers: 25})

	err := merged.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_players")
}

func TestLayoutMerge_UnknownFieldRejected(t *testing.T) {
	merged := DefaultLayout().Merge(Layout{Fields: map[string]string{"Tema": "F3"}})

	err := merged.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tema"`)
}
