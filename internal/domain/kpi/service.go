package kpi

import "context"

// KpiService defines business logic for bonus metrics and reported results.
type KpiService interface {
	CreateMetric(ctx context.Context, req CreateMetricRequest) (MetricResponse, error)
	GetMetric(ctx context.Context, id string) (MetricResponse, error)
	ListMetrics(ctx context.Context) ([]MetricResponse, error)
	UpdateMetric(ctx context.Context, req UpdateMetricRequest) (MetricResponse, error)
	DeleteMetric(ctx context.Context, id string) error
	AssignEmployees(ctx context.Context, req AssignEmployeesRequest) (MetricResponse, error)

	// SubmitResult stores a reported value and its recomputed bonus.
	SubmitResult(ctx context.Context, req SubmitResultRequest) (ResultResponse, error)
	ListResults(ctx context.Context, employeeID string, year, month int) ([]ResultResponse, error)

	// BonusTotal aggregates the employee's calculated bonuses for a period;
	// metrics without a reported result contribute zero.
	BonusTotal(ctx context.Context, employeeID string, year, month int) (BonusTotalResponse, error)
}
