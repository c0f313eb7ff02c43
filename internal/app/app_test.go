package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Mastra10/App-Distinta/internal/config"
	"github.com/Mastra10/App-Distinta/internal/distinta"
	"github.com/Mastra10/App-Distinta/internal/model"
)

func writeRoster(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	rows := [][]any{
		{"COGNOME", "NOME", "MATRICOLA", "ANNO", "MESE", "GIORNO"},
		{"Rossi", "Mario", "123", 2005, 4, 10},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestNew_WorkbookSourceAndDefaultTemplate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Roster.Location = writeRoster(t)

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	res, err := a.Service.Submit(context.Background(), model.MatchMetadata{TeamName: "FRAORE", MatchLabel: "A - B"}, []string{"rossi"})
	require.NoError(t, err)
	assert.Equal(t, "DISTINTA_FRAORE.xlsx", res.Artifact.Filename)
	assert.Equal(t, 1, res.Report.Matched())
	assert.True(t, a.Roster.Info().Loaded)
}

func TestNew_MissingTemplate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Roster.Location = "roster.xlsx"
	cfg.Template.Path = filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := New(cfg)
	require.Error(t, err)
}

func TestNew_TemplateWithoutSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	cfg := config.DefaultConfig()
	cfg.Roster.Location = "roster.xlsx"
	cfg.Template.Path = path

	_, err := New(cfg)
	assert.ErrorIs(t, err, distinta.ErrTemplateStructure)
}

func TestNew_SQLiteMissingFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Roster.Source = config.SourceSQLite
	cfg.Roster.SQLitePath = filepath.Join(t.TempDir(), "missing.db")

	_, err := New(cfg)
	require.Error(t, err)
}

func TestWatchPath(t *testing.T) {
	cfg := config.DefaultConfig()
	a := &App{Config: cfg}

	cfg.Roster.Location = "https://example.com/roster.xlsx"
	assert.Empty(t, a.WatchPath())

	cfg.Roster.Location = "roster.xlsx"
	assert.Equal(t, "roster.xlsx", a.WatchPath())

	cfg.Roster.Source = config.SourceSQLite
	cfg.Roster.SQLitePath = "roster.db"
	assert.Equal(t, "roster.db", a.WatchPath())

	cfg.Roster.Watch = false
	assert.Empty(t, a.WatchPath())
}
