package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// RangeStore is the boundary to the external spreadsheet. The real backend
// is the Google Sheets v4 API (Client); unauthenticated readers get the
// public CSV export (CSVStore) instead, which rejects every write.
type RangeStore interface {
	GetRange(ctx context.Context, rangeRef string) ([][]string, error)
	UpdateRange(ctx context.Context, rangeRef string, values [][]string) error
	ClearRange(ctx context.Context, rangeRef string) error
	AppendRow(ctx context.Context, rangeRef string, row []string) error
	DeleteRow(ctx context.Context, sheetGID int64, rowIndex int) error
	BatchUpdate(ctx context.Context, data []RangeValues) error
	BatchClear(ctx context.Context, rangeRefs []string) error

	// CanEdit reports whether the current credential may write.
	CanEdit() bool
}

// RangeValues couples one A1 range with the values to write there.
type RangeValues struct {
	Range  string
	Values [][]string
}

// Ref is a parsed A1 range reference. Indices are 0-based; open bounds
// (a bare column like "A:C", or a missing end) are -1.
type Ref struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

var rangeRefRe = regexp.MustCompile(`^([^!]+)!([A-Za-z]+)(\d+)?(?::([A-Za-z]+)(\d+)?)?$`)

// ParseRange splits a reference like "2026년!A3:ZZ" into its components.
func ParseRange(rangeRef string) (Ref, error) {
	m := rangeRefRe.FindStringSubmatch(rangeRef)
	if m == nil {
		return Ref{}, fmt.Errorf("malformed range %q", rangeRef)
	}

	ref := Ref{Sheet: m[1], StartRow: -1, EndCol: -1, EndRow: -1}

	startCol, err := excelize.ColumnNameToNumber(m[2])
	if err != nil {
		return Ref{}, fmt.Errorf("malformed range %q: %w", rangeRef, err)
	}
	ref.StartCol = startCol - 1

	if m[3] != "" {
		n, _ := strconv.Atoi(m[3])
		ref.StartRow = n - 1
	}
	if m[4] != "" {
		endCol, err := excelize.ColumnNameToNumber(m[4])
		if err != nil {
			return Ref{}, fmt.Errorf("malformed range %q: %w", rangeRef, err)
		}
		ref.EndCol = endCol - 1
	}
	if m[5] != "" {
		n, _ := strconv.Atoi(m[5])
		ref.EndRow = n - 1
	}
	return ref, nil
}

// CellRef builds the A1 reference for a single cell from 0-based indices.
func CellRef(sheet string, col, row int) (string, error) {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return "", fmt.Errorf("column %d: %w", col, err)
	}
	return fmt.Sprintf("%s!%s%d", sheet, name, row+1), nil
}

// RowRef builds the A1 reference for a horizontal span of cells on one row.
func RowRef(sheet string, colStart, colEnd, row int) (string, error) {
	start, err := excelize.ColumnNumberToName(colStart + 1)
	if err != nil {
		return "", fmt.Errorf("column %d: %w", colStart, err)
	}
	end, err := excelize.ColumnNumberToName(colEnd + 1)
	if err != nil {
		return "", fmt.Errorf("column %d: %w", colEnd, err)
	}
	return fmt.Sprintf("%s!%s%d:%s%d", sheet, start, row+1, end, row+1), nil
}
