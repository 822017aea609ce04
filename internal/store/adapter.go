// Package store implements leave and off-day operations on top of the
// spreadsheet range store. It computes cell coordinates with the locator,
// normalizes every token through the date codec before a write, and merges
// the three sheet ranges into the roster view the UI consumes.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/seogi1004/dental-al/internal/dateutil"
	"github.com/seogi1004/dental-al/internal/grid"
	"github.com/seogi1004/dental-al/internal/sheets"
)

// Reserved leave-date band in the calendar sheet: columns E through X,
// giving each staff row 20 slots. Columns A-D hold name and summary info.
const (
	leaveColStart = 4
	leaveColEnd   = 23
)

// offGIDCell is where the summary sheet publishes the off-log's sheet GID,
// so the log can be moved without a redeploy.
const offGIDCell = "B20"

// Options carries the sheet names and layout the adapter operates on.
type Options struct {
	SummarySheet  string
	CalendarSheet string
	OffSheet      string
	OffSheetGID   int64
	Year          int
}

// Adapter issues reads and writes against the range store. Each operation
// is atomic only at the level of a single range call; concurrent editors
// follow last-write-wins semantics.
type Adapter struct {
	store sheets.RangeStore
	opt   Options
}

func New(store sheets.RangeStore, opt Options) *Adapter {
	return &Adapter{store: store, opt: opt}
}

// Store exposes the underlying range store for read-only callers.
func (a *Adapter) Store() sheets.RangeStore { return a.store }

// AddLeave writes a leave token into the first free slot of the staff
// member's reserved band. Fails with ErrNotFound when the name has no
// calendar row and ErrCapacityExceeded when the band is full.
func (a *Adapter) AddLeave(ctx context.Context, name, token string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}
	parsed, err := a.validToken(token)
	if err != nil {
		return err
	}

	rows, err := a.store.GetRange(ctx, a.opt.CalendarSheet+"!A:Z")
	if err != nil {
		return err
	}

	rowIdx := grid.FindRow(rows, name)
	if rowIdx == grid.NotFound {
		return fmt.Errorf("staff %q: %w", name, sheets.ErrNotFound)
	}

	colIdx := grid.FindFirstEmpty(rows[rowIdx], leaveColStart, leaveColEnd)
	if colIdx == grid.NotFound {
		return fmt.Errorf("staff %q: %w", name, sheets.ErrCapacityExceeded)
	}

	ref, err := sheets.CellRef(a.opt.CalendarSheet, colIdx, rowIdx)
	if err != nil {
		return err
	}
	return a.store.UpdateRange(ctx, ref, [][]string{{dateutil.EncodeToken(parsed.Date, parsed.Type)}})
}

// UpdateLeave rewrites the cell holding oldToken with newToken. Matching is
// by normalized date, so "1-15", "01/15" and "2026-01-15" all address the
// same cell.
func (a *Adapter) UpdateLeave(ctx context.Context, name, oldToken, newToken string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}
	parsed, err := a.validToken(newToken)
	if err != nil {
		return err
	}

	rowIdx, colIdx, err := a.findLeaveCell(ctx, name, oldToken)
	if err != nil {
		return err
	}

	ref, err := sheets.CellRef(a.opt.CalendarSheet, colIdx, rowIdx)
	if err != nil {
		return err
	}
	return a.store.UpdateRange(ctx, ref, [][]string{{dateutil.EncodeToken(parsed.Date, parsed.Type)}})
}

// DeleteLeave clears the cell holding the token. Other cells keep their
// positions; the freed slot is reused by the next AddLeave.
func (a *Adapter) DeleteLeave(ctx context.Context, name, token string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}

	rowIdx, colIdx, err := a.findLeaveCell(ctx, name, token)
	if err != nil {
		return err
	}

	ref, err := sheets.CellRef(a.opt.CalendarSheet, colIdx, rowIdx)
	if err != nil {
		return err
	}
	return a.store.ClearRange(ctx, ref)
}

// AddOff appends one row to the off-day log. No row lookup is needed; the
// log is a flat append-only table.
func (a *Adapter) AddOff(ctx context.Context, name, token, memo string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}
	parsed, err := a.validToken(token)
	if err != nil {
		return err
	}

	row := []string{name, dateutil.EncodeToken(parsed.Date, parsed.Type), memo}
	return a.store.AppendRow(ctx, a.opt.OffSheet+"!A:C", row)
}

// UpdateOff rewrites the date and memo cells of the off row matching
// (name, oldToken) in place.
func (a *Adapter) UpdateOff(ctx context.Context, name, oldToken, newToken, memo string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}
	parsed, err := a.validToken(newToken)
	if err != nil {
		return err
	}

	rowIdx, err := a.findOffRow(ctx, name, oldToken)
	if err != nil {
		return err
	}

	ref, err := sheets.RowRef(a.opt.OffSheet, 1, 2, rowIdx)
	if err != nil {
		return err
	}
	return a.store.UpdateRange(ctx, ref, [][]string{{dateutil.EncodeToken(parsed.Date, parsed.Type), memo}})
}

// DeleteOff physically removes the matching row from the off log, shifting
// later rows up. The log's sheet GID is read from the summary sheet when
// published there, falling back to the configured value.
func (a *Adapter) DeleteOff(ctx context.Context, name, token string) error {
	if err := a.checkEdit(); err != nil {
		return err
	}

	rowIdx, err := a.findOffRow(ctx, name, token)
	if err != nil {
		return err
	}
	return a.store.DeleteRow(ctx, a.offSheetGID(ctx), rowIdx)
}

// ListOffRows returns the raw off-log rows (name, date, memo).
func (a *Adapter) ListOffRows(ctx context.Context) ([][]string, error) {
	return a.store.GetRange(ctx, a.opt.OffSheet+"!A:C")
}

func (a *Adapter) checkEdit() error {
	if !a.store.CanEdit() {
		return sheets.ErrPermissionDenied
	}
	return nil
}

func (a *Adapter) validToken(token string) (dateutil.Parsed, error) {
	parsed := dateutil.ParseToken(token, a.opt.Year)
	if parsed.Date == "" {
		return parsed, fmt.Errorf("token %q (want MM/DD, MM/DD AM or MM/DD PM): %w", token, sheets.ErrValidation)
	}
	return parsed, nil
}

func (a *Adapter) sameDate(cell, token string) bool {
	return dateutil.NormalizeToken(cell, a.opt.Year) == dateutil.NormalizeToken(token, a.opt.Year)
}

func (a *Adapter) findLeaveCell(ctx context.Context, name, token string) (rowIdx, colIdx int, err error) {
	rows, err := a.store.GetRange(ctx, a.opt.CalendarSheet+"!A:Z")
	if err != nil {
		return 0, 0, err
	}

	rowIdx = grid.FindRow(rows, name)
	if rowIdx == grid.NotFound {
		return 0, 0, fmt.Errorf("staff %q: %w", name, sheets.ErrNotFound)
	}

	colIdx = grid.FindColumn(rows[rowIdx], leaveColStart, token, a.sameDate)
	if colIdx == grid.NotFound {
		return 0, 0, fmt.Errorf("leave %q for %q: %w", token, name, sheets.ErrNotFound)
	}
	return rowIdx, colIdx, nil
}

func (a *Adapter) findOffRow(ctx context.Context, name, token string) (int, error) {
	rows, err := a.store.GetRange(ctx, a.opt.OffSheet+"!A:B")
	if err != nil {
		return 0, err
	}

	for i, row := range rows {
		if len(row) < 2 || row[0] != name {
			continue
		}
		if a.sameDate(row[1], token) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("off %q for %q: %w", token, name, sheets.ErrNotFound)
}

func (a *Adapter) offSheetGID(ctx context.Context) int64 {
	rows, err := a.store.GetRange(ctx, a.opt.SummarySheet+"!"+offGIDCell)
	if err == nil && len(rows) > 0 && len(rows[0]) > 0 {
		if gid, err := strconv.ParseInt(strings.TrimSpace(rows[0][0]), 10, 64); err == nil {
			return gid
		}
	}
	return a.opt.OffSheetGID
}
