package roster

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// maxWorkbookBytes caps the size of a downloaded roster workbook.
const maxWorkbookBytes = 32 << 20

// WorkbookSource reads the roster from an .xlsx workbook, either a local
// file or an HTTP(S) URL (e.g. a shared spreadsheet exported as xlsx).
type WorkbookSource struct {
	Location string // path or http(s) URL
	Sheet    string // empty selects the first sheet
	Token    string // optional bearer token for URLs
	Client   *http.Client
}

// NewWorkbookSource creates a workbook source with a bounded HTTP timeout.
func NewWorkbookSource(location, sheet, token string, timeout time.Duration) *WorkbookSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WorkbookSource{
		Location: location,
		Sheet:    sheet,
		Token:    token,
		Client:   &http.Client{Timeout: timeout},
	}
}

// FetchRoster downloads or opens the workbook and returns the selected sheet.
func (s *WorkbookSource) FetchRoster(ctx context.Context) (*RawTable, error) {
	if s.Location == "" {
		return nil, fmt.Errorf("roster location is empty")
	}

	var (
		raw []byte
		err error
	)
	if IsURL(s.Location) {
		raw, err = s.download(ctx)
	} else {
		raw, err = os.ReadFile(s.Location)
	}
	if err != nil {
		return nil, err
	}

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer wb.Close()

	return readSheet(wb, s.Sheet)
}

func (s *WorkbookSource) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("roster download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxWorkbookBytes+1))
	if err != nil {
		return nil, fmt.Errorf("roster download failed: %w", err)
	}
	if len(data) > maxWorkbookBytes {
		return nil, fmt.Errorf("roster workbook exceeds %d bytes", maxWorkbookBytes)
	}
	return data, nil
}

// readSheet returns the header and data rows of a sheet, matched
// case-insensitively by name.
func readSheet(wb *excelize.File, want string) (*RawTable, error) {
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("roster workbook has no sheets")
	}

	sheet := sheets[0]
	if want != "" {
		sheet = ""
		for _, name := range sheets {
			if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(want)) {
				sheet = name
				break
			}
		}
		if sheet == "" {
			return nil, fmt.Errorf("roster sheet %q not found (sheets: %s)", want, strings.Join(sheets, ", "))
		}
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &RawTable{FirstRow: 2}, nil
	}
	return &RawTable{
		Header:   rows[0],
		Rows:     rows[1:],
		FirstRow: 2,
	}, nil
}

// IsURL reports whether location is fetched over HTTP.
func IsURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
