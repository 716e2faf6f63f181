package attendance

import (
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

type DayInput struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

type SaveSheetRequest struct {
	EmployeeID string
	Year       int
	Month      int
	Days       []DayInput `json:"days"`
}

func (r *SaveSheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a valid year and month"})
	}
	for _, d := range r.Days {
		if _, ok := validator.IsValidDate(d.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "days.date", Message: "must be a valid date (YYYY-MM-DD)"})
			break
		}
		if !d.Status.Valid() {
			errs = append(errs, validator.ValidationError{Field: "days.status", Message: "must be one of work, sick, unpaid, vacation, none"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayResponse struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

type SheetResponse struct {
	EmployeeID string        `json:"employee_id"`
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Days       []DayResponse `json:"days"`
}

type WorkedDaysResponse struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	WorkedDays int    `json:"worked_days"`
}
