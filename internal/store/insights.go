package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/seogi1004/dental-al/internal/dateutil"
	"github.com/seogi1004/dental-al/internal/models"
)

// MonthLeave is one leave entry in the current month's overview. Duplicate
// (name, date) pairs are flagged for the admin but never rejected.
type MonthLeave struct {
	Name        string        `json:"name"`
	Role        string        `json:"role"`
	Original    string        `json:"original"`
	Date        string        `json:"date"`
	Type        dateutil.Half `json:"type"`
	IsDuplicate bool          `json:"isDuplicate"`
	Warning     string        `json:"warning,omitempty"`
}

// TodayLeave names a staff member absent today.
type TodayLeave struct {
	Name     string        `json:"name"`
	Role     string        `json:"role"`
	Type     dateutil.Half `json:"type"`
	Original string        `json:"original"`
}

// TokenWarning flags a stored token that needs admin attention: either it
// failed to decode, or it lands on a Sunday.
type TokenWarning struct {
	Name     string `json:"name"`
	Original string `json:"original"`
	Date     string `json:"date,omitempty"`
	Reason   string `json:"reason"`
}

// CurrentMonthLeaves collects every decodable leave falling in today's
// month, sorted by date, with duplicate registrations flagged.
func CurrentMonthLeaves(roster []models.Staff, today time.Time) []MonthLeave {
	var list []MonthLeave
	for _, staff := range roster {
		for _, leave := range staff.Leaves {
			date := leave.Parsed.Date
			if !dateutil.IsValidDate(date) {
				continue
			}
			d, err := time.Parse("2006-01-02", date)
			if err != nil || d.Month() != today.Month() || d.Year() != today.Year() {
				continue
			}
			list = append(list, MonthLeave{
				Name:     staff.Name,
				Role:     staff.Role,
				Original: leave.Original,
				Date:     date,
				Type:     leave.Parsed.Type,
			})
		}
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

	counts := make(map[string]int, len(list))
	for _, item := range list {
		counts[item.Name+"_"+item.Date]++
	}
	for i := range list {
		n := counts[list[i].Name+"_"+list[i].Date]
		if n > 1 {
			list[i].IsDuplicate = true
			list[i].Warning = fmt.Sprintf("%s is registered %d times on this date", list[i].Name, n)
		}
	}
	return list
}

// TodayLeaves lists staff whose leave falls on today's date.
func TodayLeaves(roster []models.Staff, today time.Time) []TodayLeave {
	todayStr := today.Format("2006-01-02")

	var list []TodayLeave
	for _, staff := range roster {
		for _, leave := range staff.Leaves {
			if leave.Parsed.Date == todayStr {
				list = append(list, TodayLeave{
					Name:     staff.Name,
					Role:     staff.Role,
					Type:     leave.Parsed.Type,
					Original: leave.Original,
				})
			}
		}
	}
	return list
}

// InvalidLeaves lists stored tokens that failed to decode into a calendar
// date. These stay in the sheet untouched; the admin decides what to do.
func InvalidLeaves(roster []models.Staff) []TokenWarning {
	var list []TokenWarning
	for _, staff := range roster {
		for _, leave := range staff.Leaves {
			if leave.Parsed.Date == "" || !dateutil.IsValidDate(leave.Parsed.Date) {
				list = append(list, TokenWarning{
					Name:     staff.Name,
					Original: leave.Original,
					Reason:   "unrecognized date format",
				})
			}
		}
	}
	return list
}

// SundayLeaves flags leave entries on Sundays, when the clinic is closed
// anyway. Advisory only; Sunday entries are still stored.
func SundayLeaves(roster []models.Staff) []TokenWarning {
	var list []TokenWarning
	for _, staff := range roster {
		for _, leave := range staff.Leaves {
			date := leave.Parsed.Date
			if !dateutil.IsValidDate(date) {
				continue
			}
			d, err := time.Parse("2006-01-02", date)
			if err != nil || d.Weekday() != time.Sunday {
				continue
			}
			list = append(list, TokenWarning{
				Name:     staff.Name,
				Original: leave.Original,
				Date:     date,
				Reason:   "leave falls on a Sunday",
			})
		}
	}
	return list
}
