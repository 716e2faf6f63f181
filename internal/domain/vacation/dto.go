package vacation

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	DaysCount  int    `json:"days_count"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if r.DaysCount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "days_count", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of pending, approved, rejected, completed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestFilter struct {
	EmployeeID *string
	Status     *Status
	Year       *int
	Month      *int
}

type RequestResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	DaysCount     int             `json:"days_count"`
	Status        Status          `json:"status"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	AverageSalary decimal.Decimal `json:"average_salary"`
	PeriodStart   string          `json:"calculation_period_start"`
	PeriodEnd     string          `json:"calculation_period_end"`
	// PayInPreviousMonth is true when the payment must be attributed to the
	// payroll month before the vacation's own month.
	PayInPreviousMonth bool `json:"pay_in_previous_month"`
}

func NewRequestResponse(req Request, payInPreviousMonth bool) RequestResponse {
	resp := RequestResponse{
		ID:                 req.ID,
		EmployeeID:         req.EmployeeID,
		StartDate:          req.StartDate.Format("2006-01-02"),
		EndDate:            req.EndDate.Format("2006-01-02"),
		DaysCount:          req.DaysCount,
		Status:             req.Status,
		PaymentAmount:      req.PaymentAmount,
		AverageSalary:      req.AverageSalary,
		PeriodStart:        req.PeriodStart.Format("2006-01-02"),
		PeriodEnd:          req.PeriodEnd.Format("2006-01-02"),
		PayInPreviousMonth: payInPreviousMonth,
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	return resp
}
