package roster

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	_ "github.com/mattn/go-sqlite3"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads the roster from a table of a SQLite database.
// The database is opened read-only; column names become the header.
type SQLiteSource struct {
	db    *sql.DB
	table string
}

// NewSQLiteSource opens the database at dbPath and checks the table name.
func NewSQLiteSource(dbPath, table string) (*SQLiteSource, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid roster table name %q", table)
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("roster database not found: %w", err)
	}

	db, err := sql.Open("sqlite3", sqliteDSN(dbPath, "ro"))
	if err != nil {
		return nil, fmt.Errorf("failed to open roster database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping roster database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLiteSource{db: db, table: table}, nil
}

// sqliteDSN builds a file: URI, escaping "?" and "#" in the path.
func sqliteDSN(path, mode string) string {
	escaped := (&url.URL{Path: filepath.ToSlash(path)}).EscapedPath()
	return "file:" + escaped + "?mode=" + mode
}

// FetchRoster selects every row of the roster table.
func (s *SQLiteSource) FetchRoster(ctx context.Context) (*RawTable, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, s.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query roster table: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := &RawTable{Header: cols, FirstRow: 1}
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Close closes the database connection.
func (s *SQLiteSource) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
