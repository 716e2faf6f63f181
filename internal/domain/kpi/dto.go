package kpi

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

type CreateMetricRequest struct {
	Name     string          `json:"name"`
	Type     MetricType      `json:"type"`
	BaseRate decimal.Decimal `json:"base_rate"`
	Tiers    []Tier          `json:"tiers,omitempty"`
}

func (r *CreateMetricRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of tiered, multiply, percentage, sum_percentage"})
	}
	if r.Type == MetricTiered && len(r.Tiers) == 0 {
		errs = append(errs, validator.ValidationError{Field: "tiers", Message: "at least one tier is required for a tiered metric"})
	}
	for _, t := range r.Tiers {
		if t.MaxValue != nil && t.MaxValue.LessThan(t.MinValue) {
			errs = append(errs, validator.ValidationError{Field: "tiers", Message: "max_value must not be below min_value"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateMetricRequest struct {
	ID       string
	Name     *string          `json:"name,omitempty"`
	BaseRate *decimal.Decimal `json:"base_rate,omitempty"`
	Tiers    []Tier           `json:"tiers,omitempty"`
}

func (r *UpdateMetricRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	for _, t := range r.Tiers {
		if t.MaxValue != nil && t.MaxValue.LessThan(t.MinValue) {
			errs = append(errs, validator.ValidationError{Field: "tiers", Message: "max_value must not be below min_value"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignEmployeesRequest struct {
	MetricID    string
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *AssignEmployeesRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitResultRequest struct {
	EmployeeID  string          `json:"employee_id"`
	MetricID    string          `json:"metric_id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Value       decimal.Decimal `json:"value"`
}

func (r *SubmitResultRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.MetricID) {
		errs = append(errs, validator.ValidationError{Field: "metric_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.PeriodYear, r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a valid year and month"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MetricResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        MetricType      `json:"type"`
	BaseRate    decimal.Decimal `json:"base_rate"`
	Tiers       []Tier          `json:"tiers,omitempty"`
	EmployeeIDs []string        `json:"employee_ids,omitempty"`
}

func NewMetricResponse(m Metric) MetricResponse {
	return MetricResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		BaseRate:    m.BaseRate,
		Tiers:       m.Tiers,
		EmployeeIDs: m.EmployeeIDs,
	}
}

type ResultResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	MetricID        string          `json:"metric_id"`
	MetricName      string          `json:"metric_name,omitempty"`
	PeriodYear      int             `json:"period_year"`
	PeriodMonth     int             `json:"period_month"`
	Value           decimal.Decimal `json:"value"`
	CalculatedBonus decimal.Decimal `json:"calculated_bonus"`
}

func NewResultResponse(res Result) ResultResponse {
	resp := ResultResponse{
		ID:              res.ID,
		EmployeeID:      res.EmployeeID,
		MetricID:        res.MetricID,
		PeriodYear:      res.PeriodYear,
		PeriodMonth:     res.PeriodMonth,
		Value:           res.Value,
		CalculatedBonus: res.CalculatedBonus,
	}
	if res.MetricName != nil {
		resp.MetricName = *res.MetricName
	}
	return resp
}

type BonusTotalResponse struct {
	EmployeeID  string          `json:"employee_id"`
	PeriodYear  int             `json:"period_year"`
	PeriodMonth int             `json:"period_month"`
	Total       decimal.Decimal `json:"total"`
}
