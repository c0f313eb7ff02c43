package distinta

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// workbook a Document backed by an excelize file. Writes keep the
// template's styles, merges and formulas untouched.
type workbook struct {
	file *excelize.File
}

func (w *workbook) Surface(name string) (Surface, error) {
	for _, sheet := range w.file.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(sheet), strings.TrimSpace(name)) {
			return &sheetSurface{file: w.file, sheet: sheet}, nil
		}
	}
	return nil, fmt.Errorf("%w: sheet %q not found (sheets: %s)",
		ErrTemplateStructure, name, strings.Join(w.file.GetSheetList(), ", "))
}

func (w *workbook) Bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *workbook) Close() error {
	return w.file.Close()
}

type sheetSurface struct {
	file  *excelize.File
	sheet string
}

// SetCell writes value as a string cell so registration ids keep leading
// zeros and dates keep their DD/MM/YYYY text.
func (s *sheetSurface) SetCell(cell, value string) error {
	return s.file.SetCellStr(s.sheet, cell, value)
}

func (s *sheetSurface) Cell(cell string) (string, error) {
	return s.file.GetCellValue(s.sheet, cell)
}
