package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Half marks whether a leave covers the full day or only a half day.
type Half string

const (
	Full Half = "FULL"
	AM   Half = "AM"
	PM   Half = "PM"
)

// Parsed is the normalized form of a leave date token.
type Parsed struct {
	Date string `json:"date"`
	Type Half   `json:"type"`
}

var (
	legacyTokenRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:\s*\((AM|PM)\))?$`)
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	nonDigitRe    = regexp.MustCompile(`[^0-9]+`)
	halfMarkerRe  = regexp.MustCompile(`(?i)AM|PM`)
)

var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// ParseToken decodes a leave date token into its normalized form.
//
// Two grammars are accepted: the legacy long form "YYYY-MM-DD" with an
// optional "(AM)"/"(PM)" suffix, and the short form "M/D" (separators -, /
// or .) with an optional AM/PM or 오전/오후 marker. Short form tokens take
// their calendar year from the year argument. Tokens that do not reduce to
// a real calendar date come back with an empty Date; ParseToken never
// fails outright, and an empty token yields {Date: "", Type: Full}.
func ParseToken(token string, year int) Parsed {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return Parsed{Date: "", Type: Full}
	}

	if m := legacyTokenRe.FindStringSubmatch(trimmed); m != nil {
		half := Full
		if m[2] != "" {
			half = Half(m[2])
		}
		if !IsValidDate(m[1]) {
			return Parsed{Date: "", Type: half}
		}
		return Parsed{Date: m[1], Type: half}
	}

	half := detectHalf(trimmed)

	stripped := strings.ReplaceAll(trimmed, "오전", " ")
	stripped = strings.ReplaceAll(stripped, "오후", " ")
	stripped = halfMarkerRe.ReplaceAllString(stripped, " ")

	groups := strings.Fields(nonDigitRe.ReplaceAllString(stripped, " "))
	if len(groups) != 2 {
		return Parsed{Date: "", Type: half}
	}

	month, errM := strconv.Atoi(groups[0])
	day, errD := strconv.Atoi(groups[1])
	if errM != nil || errD != nil {
		return Parsed{Date: "", Type: half}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Parsed{Date: "", Type: half}
	}

	// time.Date normalizes overflow (Feb 30 becomes Mar 1/2), so a
	// round-trip mismatch means the day does not exist in that month.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return Parsed{Date: "", Type: half}
	}

	return Parsed{
		Date: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		Type: half,
	}
}

// EncodeToken renders a normalized date back into the short token form
// written to the sheet: "MM/DD", optionally suffixed with " AM" or " PM".
// The legacy long form is never produced. An invalid ISO date yields "".
func EncodeToken(iso string, half Half) string {
	m := isoDateRe.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	token := fmt.Sprintf("%02d/%02d", month, day)
	switch half {
	case AM:
		token += " AM"
	case PM:
		token += " PM"
	}
	return token
}

// NormalizeToken re-encodes a token into the canonical "MM/DD[ AM| PM]"
// spelling. Tokens that fail to decode are returned trimmed but otherwise
// unchanged, mirroring how the sheet keeps unparseable cells as-is.
func NormalizeToken(token string, year int) string {
	p := ParseToken(token, year)
	if p.Date == "" {
		return strings.TrimSpace(token)
	}
	return EncodeToken(p.Date, p.Type)
}

// IsValidDate reports whether iso is a well-formed YYYY-MM-DD string naming
// a real calendar day. Reconstructing the date and comparing components
// guards against rollover masking bad input.
func IsValidDate(iso string) bool {
	m := isoDateRe.FindStringSubmatch(iso)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}

// FormatDate renders a token for display as "M/D(요일)" with an optional
// trailing " AM"/" PM". Tokens that fail to decode are returned unchanged.
func FormatDate(token string, year int) string {
	p := ParseToken(token, year)
	if p.Date == "" {
		return token
	}
	d, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return token
	}

	out := fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), koreanWeekdays[int(d.Weekday())])
	if p.Type != Full {
		out += " " + string(p.Type)
	}
	return out
}

// Entitlement computes the annual leave days granted as of today for the
// given join date. Staff with less than one full year of service get 11
// days; afterwards the grant starts at 15 and gains one day every other
// year, capped at 25.
func Entitlement(joinDate, today time.Time) float64 {
	years := today.Year() - joinDate.Year()
	if today.Month() < joinDate.Month() ||
		(today.Month() == joinDate.Month() && today.Day() < joinDate.Day()) {
		years--
	}

	if years < 1 {
		return 11
	}
	total := 15 + float64((years-1)/2)
	if total > 25 {
		total = 25
	}
	return total
}

// TodayString returns the current local date as YYYY-MM-DD.
func TodayString() string {
	return time.Now().Format("2006-01-02")
}

func detectHalf(token string) Half {
	upper := strings.ToUpper(token)
	switch {
	case strings.Contains(upper, "AM"), strings.Contains(token, "오전"):
		return AM
	case strings.Contains(upper, "PM"), strings.Contains(token, "오후"):
		return PM
	}
	return Full
}
