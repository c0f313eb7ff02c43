package distinta

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Template immutable template bytes; every Open yields an independent
// workbook so concurrent generations never share mutable state.
type Template struct {
	Name string
	data []byte
}

// NewTemplate wraps raw .xlsx bytes.
func NewTemplate(name string, data []byte) *Template {
	return &Template{Name: name, data: data}
}

// LoadTemplate reads a template file from path.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return nil, errors.New("template path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template not found: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return NewTemplate(filepath.Base(path), data), nil
}

// Open parses a fresh workbook from the template bytes.
func (t *Template) Open() (Document, error) {
	if t == nil || len(t.data) == 0 {
		return nil, fmt.Errorf("%w: template is empty", ErrTemplateStructure)
	}
	f, err := excelize.OpenReader(bytes.NewReader(t.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateStructure, err)
	}
	return &workbook{file: f}, nil
}

// Check opens the template once and verifies the team sheet exists.
func (t *Template) Check(layout Layout) error {
	doc, err := t.Open()
	if err != nil {
		return err
	}
	defer doc.Close()
	_, err = doc.Surface(layout.Sheet)
	return err
}

// DefaultTemplate builds a plain team sheet matching layout, used when no
// template file is configured.
func DefaultTemplate(layout Layout) (*Template, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	wb := excelize.NewFile()
	defer wb.Close()

	sheet := layout.Sheet
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	titleStyle, err := wb.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	labelStyle, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	headerStyle, err := wb.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	rowStyle, err := wb.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}

	cols := []string{layout.NameColumn, layout.RegistrationColumn, layout.BirthDateColumn}
	first, err := excelize.ColumnNameToNumber(minColumn(cols))
	if err != nil {
		return nil, err
	}
	numberCol := "A"
	if first > 1 {
		numberCol, _ = excelize.ColumnNumberToName(first - 1)
	}

	if err := wb.SetCellStr(sheet, "A1", "DISTINTA DI GARA"); err != nil {
		return nil, err
	}
	_ = wb.MergeCell(sheet, "A1", layout.BirthDateColumn+"1")
	_ = wb.SetCellStyle(sheet, "A1", "A1", titleStyle)

	labels := map[string]string{
		FieldTeam:        "Squadra",
		FieldMatch:       "Gara",
		FieldDate:        "Data",
		FieldVenue:       "Campo",
		FieldCompetition: "Campionato",
	}
	for _, field := range fieldOrder {
		cell, ok := layout.Fields[field]
		if !ok {
			continue
		}
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil || col < 2 {
			continue
		}
		labelCell, _ := excelize.CoordinatesToCellName(col-1, row)
		if err := wb.SetCellStr(sheet, labelCell, labels[field]); err != nil {
			return nil, err
		}
		_ = wb.SetCellStyle(sheet, labelCell, labelCell, labelStyle)
	}

	headerRow := layout.FirstPlayerRow - 1
	if headerRow >= 1 {
		headers := []struct{ col, text string }{
			{numberCol, "N°"},
			{layout.NameColumn, "Cognome e Nome"},
			{layout.RegistrationColumn, "Matricola"},
			{layout.BirthDateColumn, "Data di nascita"},
		}
		for _, h := range headers {
			cell, _ := excelize.JoinCellName(h.col, headerRow)
			if err := wb.SetCellStr(sheet, cell, h.text); err != nil {
				return nil, err
			}
			_ = wb.SetCellStyle(sheet, cell, cell, headerStyle)
		}
	}

	for i := 0; i < layout.MaxPlayers; i++ {
		row := layout.FirstPlayerRow + i
		if numberCol != layout.NameColumn {
			cell, _ := excelize.JoinCellName(numberCol, row)
			if err := wb.SetCellValue(sheet, cell, i+1); err != nil {
				return nil, err
			}
			_ = wb.SetCellStyle(sheet, cell, cell, rowStyle)
		}
		for _, c := range cols {
			cell, _ := excelize.JoinCellName(c, row)
			_ = wb.SetCellStyle(sheet, cell, cell, rowStyle)
		}
	}

	_ = wb.SetColWidth(sheet, numberCol, numberCol, 12)
	_ = wb.SetColWidth(sheet, layout.NameColumn, layout.NameColumn, 34)
	_ = wb.SetColWidth(sheet, layout.RegistrationColumn, layout.RegistrationColumn, 16)
	_ = wb.SetColWidth(sheet, layout.BirthDateColumn, layout.BirthDateColumn, 16)

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build default template: %w", err)
	}
	return NewTemplate("default", buf.Bytes()), nil
}

func minColumn(cols []string) string {
	best, bestN := cols[0], 0
	for _, c := range cols {
		n, err := excelize.ColumnNameToNumber(c)
		if err != nil {
			continue
		}
		if bestN == 0 || n < bestN {
			best, bestN = c, n
		}
	}
	return best
}
