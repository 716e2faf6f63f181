package attendance

import "context"

// AttendanceService defines business logic for monthly timesheets.
type AttendanceService interface {
	// SaveSheet replaces the employee's timesheet for a month.
	SaveSheet(ctx context.Context, req SaveSheetRequest) (SheetResponse, error)

	// GetSheet returns the resolved (deduplicated) timesheet for a month.
	GetSheet(ctx context.Context, employeeID string, year, month int) (SheetResponse, error)

	// WorkedDays counts the worked days for an employee-month, applying the
	// termination cutoff from the employee record.
	WorkedDays(ctx context.Context, employeeID string, year, month int) (WorkedDaysResponse, error)
}
