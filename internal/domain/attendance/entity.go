package attendance

import "time"

// DayStatus is the resolved state of one employee-day in the timesheet.
type DayStatus string

const (
	StatusWork     DayStatus = "work"
	StatusSick     DayStatus = "sick"
	StatusUnpaid   DayStatus = "unpaid"
	StatusVacation DayStatus = "vacation"
	StatusNone     DayStatus = "none"
)

func (s DayStatus) Valid() bool {
	switch s {
	case StatusWork, StatusSick, StatusUnpaid, StatusVacation, StatusNone:
		return true
	}
	return false
}

// Day is a single timesheet entry. The same (employee, date) may carry several
// entries after data-entry overrides; a "work" entry always wins the merge.
type Day struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     DayStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
