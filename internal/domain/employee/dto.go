package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName   string           `json:"full_name"`
	Position   string           `json:"position"`
	HireDate   string           `json:"hire_date"`
	Rate       decimal.Decimal  `json:"rate"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.Rate.IsZero() && (r.BaseSalary == nil || !r.BaseSalary.IsPositive()) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "either rate or base_salary must be positive"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FullName   *string          `json:"full_name,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Rate != nil && r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TerminateEmployeeRequest struct {
	ID              string
	TerminationDate string `json:"termination_date"`
}

func (r *TerminateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string           `json:"id"`
	FullName        string           `json:"full_name"`
	Position        string           `json:"position"`
	HireDate        string           `json:"hire_date"`
	TerminationDate *string          `json:"termination_date,omitempty"`
	Rate            decimal.Decimal  `json:"rate"`
	BaseSalary      *decimal.Decimal `json:"base_salary,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Position:   e.Position,
		HireDate:   e.HireDate.Format("2006-01-02"),
		Rate:       e.Rate,
		BaseSalary: e.BaseSalary,
	}
	if e.TerminationDate != nil {
		d := e.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &d
	}
	return resp
}
