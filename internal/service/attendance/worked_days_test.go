package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
)

func day(y int, m time.Month, d int, status attendance.DayStatus) attendance.Day {
	return attendance.Day{
		EmployeeID: "emp-1",
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func TestCountWorkedDays_Empty(t *testing.T) {
	assert.Equal(t, 0, CountWorkedDays(nil, 2025, 3, nil))
}

func TestCountWorkedDays_CountsOnlyWork(t *testing.T) {
	entries := []attendance.Day{
		day(2025, time.March, 3, attendance.StatusWork),
		day(2025, time.March, 4, attendance.StatusSick),
		day(2025, time.March, 5, attendance.StatusVacation),
		day(2025, time.March, 6, attendance.StatusUnpaid),
		day(2025, time.March, 7, attendance.StatusWork),
		day(2025, time.March, 8, attendance.StatusNone),
	}

	assert.Equal(t, 2, CountWorkedDays(entries, 2025, 3, nil))
}

func TestCountWorkedDays_WorkWinsOverDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		statuses []attendance.DayStatus
		want     int
	}{
		{"work then sick", []attendance.DayStatus{attendance.StatusWork, attendance.StatusSick}, 1},
		{"sick then work", []attendance.DayStatus{attendance.StatusSick, attendance.StatusWork}, 1},
		{"sick then vacation", []attendance.DayStatus{attendance.StatusSick, attendance.StatusVacation}, 0},
		{"three entries one work", []attendance.DayStatus{attendance.StatusNone, attendance.StatusWork, attendance.StatusUnpaid}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []attendance.Day
			for _, st := range tt.statuses {
				entries = append(entries, day(2025, time.March, 10, st))
			}
			assert.Equal(t, tt.want, CountWorkedDays(entries, 2025, 3, nil))
		})
	}
}

func TestCountWorkedDays_TerminationCutoff(t *testing.T) {
	termination := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	entries := []attendance.Day{
		day(2025, time.March, 13, attendance.StatusWork),
		day(2025, time.March, 14, attendance.StatusWork), // termination day still counts
		day(2025, time.March, 15, attendance.StatusWork), // after termination, discarded
	}

	assert.Equal(t, 2, CountWorkedDays(entries, 2025, 3, &termination))
}

func TestCountWorkedDays_IgnoresOtherMonths(t *testing.T) {
	entries := []attendance.Day{
		day(2025, time.February, 28, attendance.StatusWork),
		day(2025, time.March, 3, attendance.StatusWork),
		day(2025, time.April, 1, attendance.StatusWork),
	}

	assert.Equal(t, 1, CountWorkedDays(entries, 2025, 3, nil))
}

func TestMergeDays(t *testing.T) {
	entries := []attendance.Day{
		day(2025, time.March, 4, attendance.StatusSick),
		day(2025, time.March, 3, attendance.StatusSick),
		day(2025, time.March, 3, attendance.StatusWork),
		day(2025, time.March, 4, attendance.StatusUnpaid),
	}

	merged := MergeDays(entries)

	assert.Len(t, merged, 2)
	assert.Equal(t, attendance.StatusWork, merged[0].Status)
	assert.Equal(t, 3, merged[0].Date.Day())
	// for non-work duplicates the later entry stays
	assert.Equal(t, attendance.StatusUnpaid, merged[1].Status)
}
