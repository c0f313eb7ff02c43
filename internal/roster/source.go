// Package roster loads the player roster from an external tabular source,
// validates its columns and keeps a time-bounded cached copy.
package roster

import (
	"context"
	"errors"
)

// ErrSourceUnavailable wraps every failure to read from a Source.
var ErrSourceUnavailable = errors.New("roster source unavailable")

// RawTable rows as read from the source, header first
type RawTable struct {
	Header []string
	Rows   [][]string
	// FirstRow is the 1-based source row of Rows[0], used in error messages.
	FirstRow int
}

// Source reads the whole roster. Implementations only need read access.
type Source interface {
	FetchRoster(ctx context.Context) (*RawTable, error)
}

// StaticSource serves a fixed table; used by tests and offline runs.
type StaticSource struct {
	Table RawTable
}

// FetchRoster returns a copy of the fixed table.
func (s *StaticSource) FetchRoster(ctx context.Context) (*RawTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := make([][]string, len(s.Table.Rows))
	for i, r := range s.Table.Rows {
		rows[i] = append([]string(nil), r...)
	}
	first := s.Table.FirstRow
	if first == 0 {
		first = 2
	}
	return &RawTable{
		Header:   append([]string(nil), s.Table.Header...),
		Rows:     rows,
		FirstRow: first,
	}, nil
}
