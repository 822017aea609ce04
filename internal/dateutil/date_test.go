package dateutil

import (
	"testing"
	"time"
)

func TestParseTokenShortForm(t *testing.T) {
	tests := []struct {
		token string
		date  string
		half  Half
	}{
		{"01/15", "2026-01-15", Full},
		{"1/15", "2026-01-15", Full},
		{"01/15 AM", "2026-01-15", AM},
		{"01/15 pm", "2026-01-15", PM},
		{"1-5", "2026-01-05", Full},
		{"1.5", "2026-01-05", Full},
		{"12/31 PM", "2026-12-31", PM},
		{"3/1 오전", "2026-03-01", AM},
		{"3/1 오후", "2026-03-01", PM},
	}

	for _, tt := range tests {
		got := ParseToken(tt.token, 2026)
		if got.Date != tt.date || got.Type != tt.half {
			t.Errorf("ParseToken(%q) = %+v, want {%s %s}", tt.token, got, tt.date, tt.half)
		}
	}
}

func TestParseTokenLegacyForm(t *testing.T) {
	got := ParseToken("2024-01-15 (AM)", 2026)
	if got.Date != "2024-01-15" || got.Type != AM {
		t.Fatalf("legacy token = %+v, want {2024-01-15 AM}", got)
	}

	got = ParseToken("2024-01-15", 2026)
	if got.Date != "2024-01-15" || got.Type != Full {
		t.Fatalf("legacy token without marker = %+v", got)
	}
}

func TestParseTokenRejectsImpossibleDates(t *testing.T) {
	for _, token := range []string{"02/30", "2/30 AM", "13/01", "0/10", "1/32", "2024-02-30"} {
		if got := ParseToken(token, 2026); got.Date != "" {
			t.Errorf("ParseToken(%q).Date = %q, want empty", token, got.Date)
		}
	}
}

func TestParseTokenEmptyAndGarbage(t *testing.T) {
	got := ParseToken("", 2026)
	if got.Date != "" || got.Type != Full {
		t.Fatalf("empty token = %+v, want {\"\" FULL}", got)
	}

	if got := ParseToken("garbage", 2026); got.Date != "" {
		t.Fatalf("garbage token decoded to %q", got.Date)
	}
	if got := ParseToken("1/2/3", 2026); got.Date != "" {
		t.Fatalf("three-group token decoded to %q", got.Date)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tokens := []string{"01/15", "01/15 AM", "01/15 PM", "1-7 pm", "12/31"}
	for _, token := range tokens {
		first := ParseToken(token, 2026)
		if first.Date == "" {
			t.Fatalf("ParseToken(%q) failed to decode", token)
		}
		again := ParseToken(EncodeToken(first.Date, first.Type), 2026)
		if again != first {
			t.Errorf("round trip of %q: %+v != %+v", token, again, first)
		}
	}
}

func TestEncodeTokenNeverLegacyForm(t *testing.T) {
	if got := EncodeToken("2026-01-05", PM); got != "01/05 PM" {
		t.Fatalf("EncodeToken = %q, want 01/05 PM", got)
	}
	if got := EncodeToken("not-a-date", Full); got != "" {
		t.Fatalf("EncodeToken on invalid input = %q, want empty", got)
	}
}

func TestNormalizeTokenEquivalentSpellings(t *testing.T) {
	for _, token := range []string{"1-15", "01/15", "1.15", "2026-01-15"} {
		if got := NormalizeToken(token, 2026); got != "01/15" {
			t.Errorf("NormalizeToken(%q) = %q, want 01/15", token, got)
		}
	}
	if got := NormalizeToken("garbage", 2026); got != "garbage" {
		t.Errorf("NormalizeToken on garbage = %q, want unchanged", got)
	}
}

func TestIsValidDate(t *testing.T) {
	if !IsValidDate("2024-01-15") {
		t.Fatalf("2024-01-15 should be valid")
	}
	if IsValidDate("2024-02-30") {
		t.Fatalf("2024-02-30 should be invalid")
	}
	if IsValidDate("2024-1-15") {
		t.Fatalf("unpadded date should be invalid")
	}
	if IsValidDate("") {
		t.Fatalf("empty string should be invalid")
	}
}

func TestFormatDate(t *testing.T) {
	// 2024-01-15 is a Monday.
	if got := FormatDate("2024-01-15", 2026); got != "1/15(월)" {
		t.Fatalf("FormatDate = %q, want 1/15(월)", got)
	}
	if got := FormatDate("2024-01-15 (AM)", 2026); got != "1/15(월) AM" {
		t.Fatalf("FormatDate with half = %q", got)
	}
	if got := FormatDate("garbage", 2026); got != "garbage" {
		t.Fatalf("FormatDate on garbage = %q, want unchanged", got)
	}
}

func TestEntitlement(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		join time.Time
		want float64
	}{
		{time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 11},  // 6 months
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 15},  // 2 years 3 months
		{time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), 15}, // just over 1 year
		{time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), 11},  // one day short of a year
		{time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC), 17},  // 5 years
		{time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 25},  // capped
	}

	for _, tt := range tests {
		if got := Entitlement(tt.join, today); got != tt.want {
			t.Errorf("Entitlement(join=%s) = %v, want %v", tt.join.Format("2006-01-02"), got, tt.want)
		}
	}
}
