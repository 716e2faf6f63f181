package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)

	GetWorkNorm(w http.ResponseWriter, r *http.Request)
	UpsertWorkNorm(w http.ResponseWriter, r *http.Request)

	Recalculate(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

// GetSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll settings updated successfully", settings)
}

// GetWorkNorm implements PayrollHandler.
func (h *PayrollHandlerImpl) GetWorkNorm(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	norm, err := h.payrollService.GetWorkNorm(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, norm)
}

// UpsertWorkNorm implements PayrollHandler.
func (h *PayrollHandlerImpl) UpsertWorkNorm(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertWorkNormRequest

	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpsertWorkNorm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Year = year
	req.Month = month

	norm, err := h.payrollService.UpsertWorkNorm(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work norm saved successfully", norm)
}

// Recalculate implements PayrollHandler.
func (h *PayrollHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req payroll.RecalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Recalculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.payrollService.Recalculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record recalculated successfully", record)
}

// GetRecord implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.payrollService.GetRecord(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListRecords implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromURL(r)
	if !ok {
		response.BadRequest(w, "Year and month must be numeric", nil)
		return
	}

	records, err := h.payrollService.ListRecords(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Preview implements PayrollHandler.
func (h *PayrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := h.payrollService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}
