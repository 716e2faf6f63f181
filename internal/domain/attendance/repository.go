package attendance

import "context"

type AttendanceRepository interface {
	// ListByEmployeeMonth returns every entry recorded for the employee in the
	// month, including superseded duplicates for the same date.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]Day, error)

	// ReplaceMonth swaps the employee's entries for the month with the given
	// set, inside one transaction.
	ReplaceMonth(ctx context.Context, employeeID string, year, month int, days []Day) error
}
