package distinta

import (
	"fmt"
	"sort"
	"strings"
)

// Surface the sheet cells are written to.
type Surface interface {
	SetCell(cell, value string) error
	Cell(cell string) (string, error)
}

// Document an opened template holding one or more surfaces.
type Document interface {
	// Surface returns the named sheet or an error wrapping ErrTemplateStructure.
	Surface(name string) (Surface, error)
	Bytes() ([]byte, error)
	Close() error
}

// MemoryDocument an in-memory Document, keyed by sheet name then cell.
// Bytes renders a plain-text dump, enough to compare generations in tests.
type MemoryDocument struct {
	Sheets map[string]map[string]string
}

// NewMemoryDocument creates a document with the given empty sheets.
func NewMemoryDocument(sheets ...string) *MemoryDocument {
	d := &MemoryDocument{Sheets: make(map[string]map[string]string, len(sheets))}
	for _, s := range sheets {
		d.Sheets[s] = make(map[string]string)
	}
	return d
}

// Surface looks a sheet up case-insensitively.
func (d *MemoryDocument) Surface(name string) (Surface, error) {
	for sheet, cells := range d.Sheets {
		if strings.EqualFold(sheet, name) {
			return memorySurface(cells), nil
		}
	}
	return nil, fmt.Errorf("%w: sheet %q not found", ErrTemplateStructure, name)
}

// Bytes lists every non-empty cell as "sheet!cell=value" lines.
func (d *MemoryDocument) Bytes() ([]byte, error) {
	var lines []string
	for sheet, cells := range d.Sheets {
		for cell, v := range cells {
			if v != "" {
				lines = append(lines, fmt.Sprintf("%s!%s=%s", sheet, cell, v))
			}
		}
	}
	sort.Strings(lines)
	return []byte(strings.Join(lines, "\n")), nil
}

// Close is a no-op.
func (d *MemoryDocument) Close() error { return nil }

type memorySurface map[string]string

func (s memorySurface) SetCell(cell, value string) error {
	if value == "" {
		delete(s, cell)
		return nil
	}
	s[cell] = value
	return nil
}

func (s memorySurface) Cell(cell string) (string, error) {
	return s[cell], nil
}
