package store

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/seogi1004/dental-al/internal/dateutil"
	"github.com/seogi1004/dental-al/internal/models"
	"github.com/seogi1004/dental-al/internal/sheets"
)

// Summary sheet layout: A=name, B=role, C=join date, D=total entitlement,
// E=used days (sheet formulas, never written by the server), F=memo.
// Staff rows live in A2:F15; the calendar sheet keeps two header rows.
const (
	summaryRange     = "A2:F15"
	summaryClearTop  = "A2:D15"
	summaryClearMemo = "F2:F15"
	calendarRange    = "A3:ZZ"
	offRange         = "A2:C"
)

// FetchRoster reads the three sheet ranges concurrently and merges them
// into the Staff view. The ranges are independent, but a failure on any
// one of them fails the whole read; a partially-merged roster is worse
// than no roster.
func (a *Adapter) FetchRoster(ctx context.Context) ([]models.Staff, error) {
	var (
		summary, calendar, off [][]string
		errS, errC, errO       error
		wg                     sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, errS = a.store.GetRange(ctx, a.opt.SummarySheet+"!"+summaryRange)
	}()
	go func() {
		defer wg.Done()
		calendar, errC = a.store.GetRange(ctx, a.opt.CalendarSheet+"!"+calendarRange)
	}()
	go func() {
		defer wg.Done()
		off, errO = a.store.GetRange(ctx, a.opt.OffSheet+"!"+offRange)
	}()
	wg.Wait()

	for _, err := range []error{errS, errC, errO} {
		if err != nil {
			return nil, err
		}
	}
	return BuildRoster(summary, calendar, off, a.opt.Year), nil
}

// BuildRoster merges the summary roster, per-staff leave columns, and the
// off-day log into one Staff slice. Summary rows without a join date are
// treated as metadata noise and skipped. Names with no calendar or off
// entries get empty lists; a mismatched name is not an error.
func BuildRoster(summaryRows, calendarRows, offRows [][]string, year int) []models.Staff {
	leavesByName := make(map[string][]models.Leave)
	for _, row := range calendarRows {
		name := cell(row, 0)
		if name == "" {
			continue
		}

		var leaves []models.Leave
		for i := leaveColStart; i < len(row); i++ {
			token := strings.TrimSpace(row[i])
			if token == "" {
				continue
			}
			leaves = append(leaves, models.Leave{
				Original: token,
				Parsed:   dateutil.ParseToken(token, year),
			})
		}
		leavesByName[name] = leaves
	}

	offsByName := make(map[string][]models.Off)
	for _, row := range offRows {
		name := strings.TrimSpace(cell(row, 0))
		token := strings.TrimSpace(cell(row, 1))
		if name == "" || token == "" {
			continue
		}
		parsed := dateutil.ParseToken(token, year)
		if parsed.Date == "" {
			continue
		}
		offsByName[name] = append(offsByName[name], models.Off{
			Name:       name,
			Date:       token,
			DateParsed: parsed.Date,
			Memo:       strings.TrimSpace(cell(row, 2)),
		})
	}

	roster := make([]models.Staff, 0, len(summaryRows))
	for _, row := range summaryRows {
		if strings.TrimSpace(cell(row, 2)) == "" {
			continue
		}
		name := cell(row, 0)

		staff := models.Staff{
			Name:     name,
			Role:     cell(row, 1),
			JoinDate: cell(row, 2),
			Total:    parseNumber(cell(row, 3)),
			Used:     parseNumber(cell(row, 4)),
			Memo:     cell(row, 5),
			Leaves:   leavesByName[name],
			Offs:     offsByName[name],
		}
		if staff.Leaves == nil {
			staff.Leaves = []models.Leave{}
		}
		if staff.Offs == nil {
			staff.Offs = []models.Off{}
		}
		roster = append(roster, staff)
	}
	return roster
}

// SaveSummary overwrites the summary roster rows. The used-days column E
// holds sheet formulas and is deliberately skipped: columns A-D and F are
// cleared and rewritten in one batch each. When a row's join date changed
// against the stored roster, its total entitlement is recomputed from the
// new date before writing.
func (a *Adapter) SaveSummary(ctx context.Context, roster []models.Staff) error {
	if err := a.checkEdit(); err != nil {
		return err
	}

	current, err := a.store.GetRange(ctx, a.opt.SummarySheet+"!"+summaryRange)
	if err != nil {
		return err
	}
	previousJoin := make(map[string]string, len(current))
	for _, row := range current {
		if name := cell(row, 0); name != "" {
			previousJoin[name] = cell(row, 2)
		}
	}

	today := time.Now()
	head := make([][]string, 0, len(roster))
	memos := make([][]string, 0, len(roster))
	for _, staff := range roster {
		total := staff.Total
		if staff.JoinDate != previousJoin[staff.Name] && dateutil.IsValidDate(staff.JoinDate) {
			join, err := time.Parse("2006-01-02", staff.JoinDate)
			if err == nil {
				total = dateutil.Entitlement(join, today)
			}
		}
		head = append(head, []string{
			staff.Name,
			staff.Role,
			staff.JoinDate,
			strconv.FormatFloat(total, 'f', -1, 64),
		})
		memos = append(memos, []string{staff.Memo})
	}

	clears := []string{
		a.opt.SummarySheet + "!" + summaryClearTop,
		a.opt.SummarySheet + "!" + summaryClearMemo,
	}
	if err := a.store.BatchClear(ctx, clears); err != nil {
		return err
	}

	return a.store.BatchUpdate(ctx, []sheets.RangeValues{
		{Range: a.opt.SummarySheet + "!A2", Values: head},
		{Range: a.opt.SummarySheet + "!F2", Values: memos},
	})
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}
