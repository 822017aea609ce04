package store

import (
	"context"
	"errors"
	"testing"

	"github.com/seogi1004/dental-al/internal/dateutil"
	"github.com/seogi1004/dental-al/internal/sheets"
)

func TestFetchRosterMergesThreeRanges(t *testing.T) {
	adapter, _ := newTestAdapter(true)

	roster, err := adapter.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("got %d staff, want 2", len(roster))
	}

	kim := roster[0]
	if kim.Name != "Kim" || kim.Role != "Dentist" || kim.JoinDate != "2026-02-03" {
		t.Fatalf("unexpected staff row: %+v", kim)
	}
	if kim.Total != 11 || kim.Used != 0.5 {
		t.Fatalf("numbers parsed wrong: total=%v used=%v", kim.Total, kim.Used)
	}
	if len(kim.Leaves) != 1 || kim.Leaves[0].Original != "01/10" {
		t.Fatalf("unexpected leaves: %+v", kim.Leaves)
	}
	if len(kim.Offs) != 2 {
		t.Fatalf("got %d offs, want 2", len(kim.Offs))
	}

	// Lee has no calendar row; missing names yield empty lists, not errors.
	lee := roster[1]
	if len(lee.Leaves) != 0 {
		t.Fatalf("Lee should have no leaves: %+v", lee.Leaves)
	}
	if len(lee.Offs) != 1 || lee.Offs[0].DateParsed != "2026-01-06" {
		t.Fatalf("unexpected offs for Lee: %+v", lee.Offs)
	}
}

func TestFetchRosterFailsWholesale(t *testing.T) {
	adapter, fake := newTestAdapter(true)
	fake.failGet["calendar"] = &sheets.TransportError{Status: 500, Body: "boom"}

	if _, err := adapter.FetchRoster(context.Background()); err == nil {
		t.Fatalf("expected wholesale failure when one range errors")
	}
}

func TestAddLeaveThenFetchRoster(t *testing.T) {
	adapter, _ := newTestAdapter(true)

	if err := adapter.AddLeave(context.Background(), "Kim", "02/03 AM"); err != nil {
		t.Fatalf("AddLeave: %v", err)
	}

	roster, err := adapter.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}

	var found bool
	for _, leave := range roster[0].Leaves {
		if leave.Parsed.Date == "2026-02-03" && leave.Parsed.Type == dateutil.AM {
			found = true
		}
	}
	if !found {
		t.Fatalf("added leave missing from roster: %+v", roster[0].Leaves)
	}
}

func TestBuildRosterFiltersRowsWithoutJoinDate(t *testing.T) {
	summary := [][]string{
		{"Kim", "Dentist", "2026-02-03", "11", "0", ""},
		{"gid-marker", "", "", "", "", ""},
		{"Lee", "Hygienist", "2024-06-01", "15", "0", ""},
	}

	roster := BuildRoster(summary, nil, nil, 2026)
	if len(roster) != 2 {
		t.Fatalf("got %d staff, want 2 (metadata row filtered)", len(roster))
	}
	if roster[0].Name != "Kim" || roster[1].Name != "Lee" {
		t.Fatalf("unexpected roster: %+v", roster)
	}
}

func TestBuildRosterKeepsUnparseableLeaveTokens(t *testing.T) {
	summary := [][]string{{"Kim", "Dentist", "2026-02-03", "11", "0", ""}}
	calendar := [][]string{{"Kim", "", "", "", "02/30", "01/15"}}

	roster := BuildRoster(summary, calendar, nil, 2026)
	if len(roster[0].Leaves) != 2 {
		t.Fatalf("got %d leaves, want 2 (bad token retained)", len(roster[0].Leaves))
	}
	if roster[0].Leaves[0].Parsed.Date != "" {
		t.Fatalf("impossible date decoded: %+v", roster[0].Leaves[0])
	}
}

func TestBuildRosterDropsInvalidOffDates(t *testing.T) {
	summary := [][]string{{"Kim", "Dentist", "2026-02-03", "11", "0", ""}}
	offs := [][]string{
		{"Kim", "02/30", "bad"},
		{"Kim", "01/05", "good"},
	}

	roster := BuildRoster(summary, nil, offs, 2026)
	if len(roster[0].Offs) != 1 || roster[0].Offs[0].Memo != "good" {
		t.Fatalf("unexpected offs: %+v", roster[0].Offs)
	}
}

func TestSaveSummarySkipsUsedColumn(t *testing.T) {
	adapter, fake := newTestAdapter(true)

	roster, err := adapter.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	roster[0].Memo = "updated"

	if err := adapter.SaveSummary(context.Background(), roster); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}

	grid := fake.grids["summary"]
	if grid[1][4] != "0.5" {
		t.Fatalf("used-days column overwritten: %q", grid[1][4])
	}
	if grid[1][5] != "updated" {
		t.Fatalf("memo not written: %q", grid[1][5])
	}
	if grid[1][0] != "Kim" || grid[1][2] != "2026-02-03" {
		t.Fatalf("head columns wrong: %v", grid[1])
	}
}

func TestSaveSummaryRecomputesEntitlementOnJoinDateEdit(t *testing.T) {
	adapter, fake := newTestAdapter(true)

	roster, err := adapter.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}

	// Kim's join date moves far into the past; the stored total of 11 no
	// longer applies and must be recomputed from the new date.
	roster[0].JoinDate = "1990-01-01"

	if err := adapter.SaveSummary(context.Background(), roster); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	if got := fake.grids["summary"][1][3]; got != "25" {
		t.Fatalf("total = %q, want recomputed 25", got)
	}

	// An unchanged join date keeps whatever total the admin set.
	roster[1].Total = 20
	if err := adapter.SaveSummary(context.Background(), roster); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	if got := fake.grids["summary"][2][3]; got != "20" {
		t.Fatalf("total = %q, want 20 untouched", got)
	}
}

func TestSaveSummaryPermissionDenied(t *testing.T) {
	adapter, _ := newTestAdapter(false)

	err := adapter.SaveSummary(context.Background(), nil)
	if !errors.Is(err, sheets.ErrPermissionDenied) {
		t.Fatalf("got %v, want ErrPermissionDenied", err)
	}
}
