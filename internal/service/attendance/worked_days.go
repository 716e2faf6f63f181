package attendance

import (
	"sort"
	"time"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
)

// CountWorkedDays collapses a month of timesheet entries into a worked-day
// count. Entries dated after the termination date are discarded (the
// termination day itself still counts); duplicate entries for one date merge
// with "work" winning over any other status.
func CountWorkedDays(entries []attendance.Day, year, month int, terminationDate *time.Time) int {
	resolved := make(map[int]attendance.DayStatus)

	for _, entry := range entries {
		if entry.Date.Year() != year || int(entry.Date.Month()) != month {
			continue
		}
		if terminationDate != nil && dateOnly(entry.Date).After(dateOnly(*terminationDate)) {
			continue
		}

		day := entry.Date.Day()
		if resolved[day] == attendance.StatusWork {
			continue
		}
		resolved[day] = entry.Status
	}

	worked := 0
	for _, status := range resolved {
		if status == attendance.StatusWork {
			worked++
		}
	}
	return worked
}

// MergeDays resolves duplicate entries per date with the same precedence rule
// and returns one entry per day, ordered by date.
func MergeDays(entries []attendance.Day) []attendance.Day {
	byDay := make(map[string]attendance.Day)
	for _, entry := range entries {
		key := dateOnly(entry.Date).Format("2006-01-02")
		if existing, ok := byDay[key]; ok && existing.Status == attendance.StatusWork {
			continue
		}
		byDay[key] = entry
	}

	merged := make([]attendance.Day, 0, len(byDay))
	for _, entry := range byDay {
		merged = append(merged, entry)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
