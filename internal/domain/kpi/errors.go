package kpi

import "errors"

var (
	ErrMetricNotFound    = errors.New("kpi metric not found")
	ErrResultNotFound    = errors.New("kpi result not found")
	ErrInvalidMetricType = errors.New("invalid kpi metric type")
	ErrMetricNotAssigned = errors.New("kpi metric is not assigned to this employee")
)
