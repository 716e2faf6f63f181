package payroll

import "context"

// PayrollService defines business logic for payroll settings, work norms and
// the accrual engine.
type PayrollService interface {
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)

	GetWorkNorm(ctx context.Context, year, month int) (WorkNormResponse, error)
	UpsertWorkNorm(ctx context.Context, req UpsertWorkNormRequest) (WorkNormResponse, error)

	// Recalculate computes the full breakdown for one employee-month from the
	// given inputs and upserts the record.
	Recalculate(ctx context.Context, req RecalculateRequest) (RecordResponse, error)
	GetRecord(ctx context.Context, employeeID string, year, month int) (RecordResponse, error)
	ListRecords(ctx context.Context, year, month int) ([]RecordResponse, error)

	// Preview runs the calculator without persisting anything.
	Preview(ctx context.Context, req PreviewRequest) (Breakdown, error)
}
