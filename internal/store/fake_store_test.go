package store

import (
	"context"

	"github.com/seogi1004/dental-al/internal/sheets"
)

// fakeStore is an in-memory RangeStore holding one whole grid per sheet
// name. Row 0 of a grid is sheet row 1.
type fakeStore struct {
	editable bool
	grids    map[string][][]string
	gidNames map[int64]string
	failGet  map[string]error

	writes int
}

func newFakeStore(editable bool) *fakeStore {
	return &fakeStore{
		editable: editable,
		grids:    make(map[string][][]string),
		gidNames: make(map[int64]string),
		failGet:  make(map[string]error),
	}
}

func (f *fakeStore) CanEdit() bool { return f.editable }

func (f *fakeStore) GetRange(ctx context.Context, rangeRef string) ([][]string, error) {
	ref, err := sheets.ParseRange(rangeRef)
	if err != nil {
		return nil, err
	}
	if err := f.failGet[ref.Sheet]; err != nil {
		return nil, err
	}

	grid := f.grids[ref.Sheet]

	start := 0
	if ref.StartRow > 0 {
		start = ref.StartRow
	}
	if start > len(grid) {
		start = len(grid)
	}
	end := len(grid)
	if ref.EndRow >= 0 && ref.EndRow+1 < end {
		end = ref.EndRow + 1
	}
	if end < start {
		end = start
	}

	var out [][]string
	for _, row := range grid[start:end] {
		lo := ref.StartCol
		if lo > len(row) {
			lo = len(row)
		}
		hi := len(row)
		if ref.EndCol >= 0 && ref.EndCol+1 < hi {
			hi = ref.EndCol + 1
		}
		if hi < lo {
			hi = lo
		}
		out = append(out, append([]string(nil), row[lo:hi]...))
	}
	return out, nil
}

func (f *fakeStore) UpdateRange(ctx context.Context, rangeRef string, values [][]string) error {
	ref, err := sheets.ParseRange(rangeRef)
	if err != nil {
		return err
	}
	f.writes++

	startRow := 0
	if ref.StartRow > 0 {
		startRow = ref.StartRow
	}
	for r, rowValues := range values {
		for c, value := range rowValues {
			f.setCell(ref.Sheet, startRow+r, ref.StartCol+c, value)
		}
	}
	return nil
}

func (f *fakeStore) ClearRange(ctx context.Context, rangeRef string) error {
	ref, err := sheets.ParseRange(rangeRef)
	if err != nil {
		return err
	}
	f.writes++

	startRow := 0
	if ref.StartRow > 0 {
		startRow = ref.StartRow
	}
	endRow := startRow
	if ref.EndRow >= 0 {
		endRow = ref.EndRow
	}
	endCol := ref.StartCol
	if ref.EndCol >= 0 {
		endCol = ref.EndCol
	}

	grid := f.grids[ref.Sheet]
	for r := startRow; r <= endRow && r < len(grid); r++ {
		for c := ref.StartCol; c <= endCol && c < len(grid[r]); c++ {
			grid[r][c] = ""
		}
	}
	return nil
}

func (f *fakeStore) AppendRow(ctx context.Context, rangeRef string, row []string) error {
	ref, err := sheets.ParseRange(rangeRef)
	if err != nil {
		return err
	}
	f.writes++
	f.grids[ref.Sheet] = append(f.grids[ref.Sheet], append([]string(nil), row...))
	return nil
}

func (f *fakeStore) DeleteRow(ctx context.Context, sheetGID int64, rowIndex int) error {
	f.writes++
	sheet, ok := f.gidNames[sheetGID]
	if !ok {
		return sheets.ErrNotFound
	}
	grid := f.grids[sheet]
	if rowIndex < 0 || rowIndex >= len(grid) {
		return sheets.ErrNotFound
	}
	f.grids[sheet] = append(grid[:rowIndex], grid[rowIndex+1:]...)
	return nil
}

func (f *fakeStore) BatchUpdate(ctx context.Context, data []sheets.RangeValues) error {
	for _, d := range data {
		if err := f.UpdateRange(ctx, d.Range, d.Values); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) BatchClear(ctx context.Context, rangeRefs []string) error {
	for _, ref := range rangeRefs {
		if err := f.ClearRange(ctx, ref); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStore) setCell(sheet string, row, col int, value string) {
	grid := f.grids[sheet]
	for len(grid) <= row {
		grid = append(grid, []string{})
	}
	for len(grid[row]) <= col {
		grid[row] = append(grid[row], "")
	}
	grid[row][col] = value
	f.grids[sheet] = grid
}
