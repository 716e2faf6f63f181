package payroll

import "context"

// PayrollRepository defines data access for settings, work norms and accrual
// records.
type PayrollRepository interface {
	// Settings
	GetSettings(ctx context.Context) (Settings, error)
	UpsertSettings(ctx context.Context, settings Settings) (Settings, error)

	// Work norms
	GetWorkNorm(ctx context.Context, year, month int) (WorkNorm, error)
	UpsertWorkNorm(ctx context.Context, norm WorkNorm) (WorkNorm, error)

	// Records
	UpsertRecord(ctx context.Context, record Record) (Record, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (Record, error)
	ListRecordsByPeriod(ctx context.Context, year, month int) ([]Record, error)

	// ListAccrualHistory returns per-month total accruals for the employee
	// inside the closed [from, to] period range, ordered by period.
	ListAccrualHistory(ctx context.Context, employeeID string, fromYear, fromMonth, toYear, toMonth int) ([]MonthlyAccrual, error)
}
