package kpi

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricType enum - the four bonus calculation modes.
type MetricType string

const (
	MetricTiered        MetricType = "tiered"
	MetricMultiply      MetricType = "multiply"
	MetricPercentage    MetricType = "percentage"
	MetricSumPercentage MetricType = "sum_percentage"
)

func (t MetricType) Valid() bool {
	switch t {
	case MetricTiered, MetricMultiply, MetricPercentage, MetricSumPercentage:
		return true
	}
	return false
}

// Tier is one band of a tiered metric. A nil MaxValue means the band is
// open-ended.
type Tier struct {
	MinValue decimal.Decimal  `json:"min_value"`
	MaxValue *decimal.Decimal `json:"max_value,omitempty"`
	Rate     decimal.Decimal  `json:"rate"`
}

// Metric is a bonus rule assigned to a set of employees.
type Metric struct {
	ID          string
	Name        string
	Type        MetricType
	BaseRate    decimal.Decimal
	Tiers       []Tier
	EmployeeIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Result - a reported value for (employee, metric, period) and its derived
// bonus. CalculatedBonus is recomputed on every submit.
type Result struct {
	ID              string
	EmployeeID      string
	MetricID        string
	PeriodYear      int
	PeriodMonth     int
	Value           decimal.Decimal
	CalculatedBonus decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	MetricName *string
}
