package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SaveSheet(w http.ResponseWriter, r *http.Request)
	GetSheet(w http.ResponseWriter, r *http.Request)
	WorkedDays(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

// SaveSheet implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SaveSheet(w http.ResponseWriter, r *http.Request) {
	var req attendance.SaveSheetRequest

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveSheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.Year = year
	req.Month = month

	sheet, err := h.attendanceService.SaveSheet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance sheet saved successfully", sheet)
}

// GetSheet implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetSheet(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	sheet, err := h.attendanceService.GetSheet(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sheet)
}

// WorkedDays implements AttendanceHandler.
func (h *AttendanceHandlerImpl) WorkedDays(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}
	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	workedDays, err := h.attendanceService.WorkedDays(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workedDays)
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}
