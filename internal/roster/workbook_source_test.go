package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildRosterWorkbook(t *testing.T, sheet string, rows [][]any) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	require.NoError(t, wb.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	return wb
}

func rosterRows() [][]any {
	return [][]any{
		{"Surname", "Name", "Registration ID", "Year", "Month", "Day"},
		{"ROSSI", "MARIO", "123", 2005, 4, 10},
		{"BIANCHI", "LUCA", "456", 2004, 1, 2},
		{"BIANCHI", "MARCO", "457", 2006, 3, 4},
	}
}

func TestWorkbookSource_LocalFile(t *testing.T) {
	wb := buildRosterWorkbook(t, "Giocatori", rosterRows())
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, wb.SaveAs(path))

	src := NewWorkbookSource(path, "giocatori", "", time.Second)
	table, err := Load(context.Background(), src)
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	assert.Equal(t, "10/04/2005", table.Players[0].DateOfBirth)
	assert.Len(t, table.Lookup("BIANCHI"), 2)
}

func TestWorkbookSource_MissingSheet(t *testing.T) {
	wb := buildRosterWorkbook(t, "Giocatori", rosterRows())
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, wb.SaveAs(path))

	src := NewWorkbookSource(path, "Tesserati", "", time.Second)
	_, err := src.FetchRoster(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tesserati")
}

func TestWorkbookSource_HTTP(t *testing.T) {
	wb := buildRosterWorkbook(t, "Sheet", rosterRows())
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	payload := buf.Bytes()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	src := NewWorkbookSource(srv.URL+"/export?format=xlsx", "", "secret", time.Second)
	raw, err := src.FetchRoster(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, []string{"Surname", "Name", "Registration ID", "Year", "Month", "Day"}, raw.Header)
	assert.Len(t, raw.Rows, 3)
	assert.Equal(t, 2, raw.FirstRow)
}

func TestWorkbookSource_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewWorkbookSource(srv.URL, "", "", time.Second)
	_, err := Load(context.Background(), src)
	require.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "403")
}
