package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

// ========== SETTINGS DTOs ==========

type SettingsResponse struct {
	MinSalary        decimal.Decimal `json:"min_salary"`
	IncomeTaxRate    decimal.Decimal `json:"income_tax_rate"`
	FsznRate         decimal.Decimal `json:"fszn_rate"`
	InsuranceRate    decimal.Decimal `json:"insurance_rate"`
	BenefitAmount    decimal.Decimal `json:"benefit_amount"`
	TaxDeduction     decimal.Decimal `json:"tax_deduction"`
	SalaryPaymentDay int             `json:"salary_payment_day"`
}

type UpdateSettingsRequest struct {
	MinSalary        *decimal.Decimal `json:"min_salary,omitempty"`
	IncomeTaxRate    *decimal.Decimal `json:"income_tax_rate,omitempty"`
	FsznRate         *decimal.Decimal `json:"fszn_rate,omitempty"`
	InsuranceRate    *decimal.Decimal `json:"insurance_rate,omitempty"`
	BenefitAmount    *decimal.Decimal `json:"benefit_amount,omitempty"`
	TaxDeduction     *decimal.Decimal `json:"tax_deduction,omitempty"`
	SalaryPaymentDay *int             `json:"salary_payment_day,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*decimal.Decimal{
		"min_salary":      r.MinSalary,
		"income_tax_rate": r.IncomeTaxRate,
		"fszn_rate":       r.FsznRate,
		"insurance_rate":  r.InsuranceRate,
		"benefit_amount":  r.BenefitAmount,
		"tax_deduction":   r.TaxDeduction,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.SalaryPaymentDay != nil && (*r.SalaryPaymentDay < 1 || *r.SalaryPaymentDay > 28) {
		errs = append(errs, validator.ValidationError{Field: "salary_payment_day", Message: "must be between 1 and 28"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== WORK NORM DTOs ==========

type UpsertWorkNormRequest struct {
	Year        int
	Month       int
	NormHours   decimal.Decimal `json:"norm_hours"`
	WorkingDays int             `json:"working_days"`
	HolidayDays int             `json:"holiday_days"`
}

func (r *UpsertWorkNormRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a valid year and month"})
	}
	if r.NormHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "norm_hours", Message: "must be non-negative"})
	}
	if r.WorkingDays < 0 || r.WorkingDays > 31 {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be between 0 and 31"})
	}
	if r.HolidayDays < 0 || r.HolidayDays > r.WorkingDays {
		errs = append(errs, validator.ValidationError{Field: "holiday_days", Message: "must not exceed working_days"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkNormResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	NormHours   decimal.Decimal `json:"norm_hours"`
	WorkingDays int             `json:"working_days"`
	HolidayDays int             `json:"holiday_days"`
}

// ========== RECORD DTOs ==========

// RecalculateRequest carries the editable inputs for one employee-month.
// WorkedDays and Bonus are optional: when omitted they are resolved from the
// attendance sheet and the KPI period total respectively.
type RecalculateRequest struct {
	EmployeeID         string           `json:"employee_id"`
	PeriodYear         int              `json:"period_year"`
	PeriodMonth        int              `json:"period_month"`
	WorkedDays         *int             `json:"worked_days,omitempty"`
	Bonus              *decimal.Decimal `json:"bonus,omitempty"`
	ExtraPay           decimal.Decimal  `json:"extra_pay"`
	VacationPayCurrent decimal.Decimal  `json:"vacation_pay_current"`
	VacationPayNext    decimal.Decimal  `json:"vacation_pay_next"`
	SickLeavePayment   decimal.Decimal  `json:"sick_leave_payment"`
	AdvancePayment     decimal.Decimal  `json:"advance_payment"`
	OtherDeductions    decimal.Decimal  `json:"other_deductions"`
}

func (r *RecalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidPeriod(r.PeriodYear, r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a valid year and month"})
	}
	if r.WorkedDays != nil && (*r.WorkedDays < 0 || *r.WorkedDays > 31) {
		errs = append(errs, validator.ValidationError{Field: "worked_days", Message: "must be between 0 and 31"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	PeriodYear   int    `json:"period_year"`
	PeriodMonth  int    `json:"period_month"`

	WorkedDays         int             `json:"worked_days"`
	Bonus              decimal.Decimal `json:"bonus"`
	ExtraPay           decimal.Decimal `json:"extra_pay"`
	VacationPayCurrent decimal.Decimal `json:"vacation_pay_current"`
	VacationPayNext    decimal.Decimal `json:"vacation_pay_next"`
	SickLeavePayment   decimal.Decimal `json:"sick_leave_payment"`
	AdvancePayment     decimal.Decimal `json:"advance_payment"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`

	Breakdown
}

func NewRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		PeriodYear:         rec.PeriodYear,
		PeriodMonth:        rec.PeriodMonth,
		WorkedDays:         rec.WorkedDays,
		Bonus:              rec.Bonus,
		ExtraPay:           rec.ExtraPay,
		VacationPayCurrent: rec.VacationPayCurrent,
		VacationPayNext:    rec.VacationPayNext,
		SickLeavePayment:   rec.SickLeavePayment,
		AdvancePayment:     rec.AdvancePayment,
		OtherDeductions:    rec.OtherDeductions,
		Breakdown:          rec.Breakdown,
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	return resp
}

// PreviewRequest computes a breakdown without touching storage.
type PreviewRequest struct {
	WorkedDays         int             `json:"worked_days"`
	WorkingDays        int             `json:"working_days"`
	HolidayDays        int             `json:"holiday_days"`
	BaseSalary         decimal.Decimal `json:"base_salary"`
	Bonus              decimal.Decimal `json:"bonus"`
	ExtraPay           decimal.Decimal `json:"extra_pay"`
	VacationPayCurrent decimal.Decimal `json:"vacation_pay_current"`
	VacationPayNext    decimal.Decimal `json:"vacation_pay_next"`
	SickLeavePayment   decimal.Decimal `json:"sick_leave_payment"`
	AdvancePayment     decimal.Decimal `json:"advance_payment"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
}
