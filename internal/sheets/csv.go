package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CSVStore reads the spreadsheet through its public CSV export, the
// fallback transport for visitors with no Google session. It can only
// read; every mutating call returns ErrPermissionDenied.
type CSVStore struct {
	SpreadsheetID string
	BaseURL       string
	GIDs          map[string]string
	HTTP          *http.Client
}

// NewCSVStore builds a read-only store. gids maps sheet names to the
// numeric GID used by the export URL.
func NewCSVStore(spreadsheetID string, gids map[string]string) *CSVStore {
	return &CSVStore{
		SpreadsheetID: spreadsheetID,
		BaseURL:       "https://docs.google.com/spreadsheets/d",
		GIDs:          gids,
		HTTP:          &http.Client{Timeout: 20 * time.Second},
	}
}

func (s *CSVStore) CanEdit() bool { return false }

// GetRange downloads the whole sheet named by rangeRef and slices it down
// to the requested window: leading rows before the range start are dropped
// (the CSV export has no way to address a sub-range) and rows are truncated
// at the end column when one is given.
func (s *CSVStore) GetRange(ctx context.Context, rangeRef string) ([][]string, error) {
	ref, err := ParseRange(rangeRef)
	if err != nil {
		return nil, err
	}

	gid, ok := s.GIDs[ref.Sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q: no export gid configured: %w", ref.Sheet, ErrNotFound)
	}

	u := fmt.Sprintf("%s/%s/export?format=csv&gid=%s", s.BaseURL, s.SpreadsheetID, gid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{Status: resp.StatusCode, Body: string(b)}
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return sliceToRange(rows, ref), nil
}

func sliceToRange(rows [][]string, ref Ref) [][]string {
	start := 0
	if ref.StartRow > 0 {
		start = ref.StartRow
	}
	if start > len(rows) {
		start = len(rows)
	}

	end := len(rows)
	if ref.EndRow >= 0 && ref.EndRow+1 < end {
		end = ref.EndRow + 1
	}
	if end < start {
		end = start
	}

	out := make([][]string, 0, end-start)
	for _, row := range rows[start:end] {
		if ref.EndCol >= 0 && len(row) > ref.EndCol+1 {
			row = row[:ref.EndCol+1]
		}
		out = append(out, row)
	}
	return out
}

func (s *CSVStore) UpdateRange(ctx context.Context, rangeRef string, values [][]string) error {
	return ErrPermissionDenied
}

func (s *CSVStore) ClearRange(ctx context.Context, rangeRef string) error {
	return ErrPermissionDenied
}

func (s *CSVStore) AppendRow(ctx context.Context, rangeRef string, row []string) error {
	return ErrPermissionDenied
}

func (s *CSVStore) DeleteRow(ctx context.Context, sheetGID int64, rowIndex int) error {
	return ErrPermissionDenied
}

func (s *CSVStore) BatchUpdate(ctx context.Context, data []RangeValues) error {
	return ErrPermissionDenied
}

func (s *CSVStore) BatchClear(ctx context.Context, rangeRefs []string) error {
	return ErrPermissionDenied
}
