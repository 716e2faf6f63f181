package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/domain/vacation"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyTerminated):
		Conflict(w, "Employee is already terminated")
	case errors.Is(err, employee.ErrInvalidCompensation):
		BadRequest(w, "Employee needs either a positive rate or a base salary", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSheetNotFound):
		NotFound(w, "Attendance sheet not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSettingsNotFound):
		NotFound(w, "Payroll settings not found")
	case errors.Is(err, payroll.ErrWorkNormNotFound):
		NotFound(w, "Work norm not found for this period")
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// KPI domain errors
	case errors.Is(err, kpi.ErrMetricNotFound):
		NotFound(w, "KPI metric not found")
	case errors.Is(err, kpi.ErrResultNotFound):
		NotFound(w, "KPI result not found")
	case errors.Is(err, kpi.ErrInvalidMetricType):
		BadRequest(w, "Invalid KPI metric type", nil)
	case errors.Is(err, kpi.ErrMetricNotAssigned):
		BadRequest(w, "KPI metric is not assigned to this employee", nil)

	// Vacation domain errors
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrRequestAlreadyProcessed):
		Conflict(w, "Vacation request already processed")
	case errors.Is(err, vacation.ErrInvalidStatusTransition):
		Conflict(w, "Invalid vacation status transition")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "Vacation end date must not be before start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
