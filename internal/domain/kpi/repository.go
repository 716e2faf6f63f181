package kpi

import "context"

type KpiRepository interface {
	// Metrics
	CreateMetric(ctx context.Context, metric Metric) (Metric, error)
	GetMetricByID(ctx context.Context, id string) (Metric, error)
	ListMetrics(ctx context.Context) ([]Metric, error)
	ListMetricsByEmployee(ctx context.Context, employeeID string) ([]Metric, error)
	UpdateMetric(ctx context.Context, req UpdateMetricRequest) error
	DeleteMetric(ctx context.Context, id string) error
	ReplaceAssignments(ctx context.Context, metricID string, employeeIDs []string) error

	// Results
	UpsertResult(ctx context.Context, result Result) (Result, error)
	ListResultsByEmployeePeriod(ctx context.Context, employeeID string, year, month int) ([]Result, error)
	ListResultsByPeriod(ctx context.Context, year, month int) ([]Result, error)
}
