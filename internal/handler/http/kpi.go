package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
	"github.com/staffdesk/payroll-backend-go/internal/handler/http/response"
)

type KpiHandler interface {
	CreateMetric(w http.ResponseWriter, r *http.Request)
	GetMetric(w http.ResponseWriter, r *http.Request)
	ListMetrics(w http.ResponseWriter, r *http.Request)
	UpdateMetric(w http.ResponseWriter, r *http.Request)
	DeleteMetric(w http.ResponseWriter, r *http.Request)
	AssignEmployees(w http.ResponseWriter, r *http.Request)

	SubmitResult(w http.ResponseWriter, r *http.Request)
	ListResults(w http.ResponseWriter, r *http.Request)
	BonusTotal(w http.ResponseWriter, r *http.Request)
}

type KpiHandlerImpl struct {
	kpiService kpi.KpiService
}

// CreateMetric implements KpiHandler.
func (h *KpiHandlerImpl) CreateMetric(w http.ResponseWriter, r *http.Request) {
	var req kpi.CreateMetricRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateMetric decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	metric, err := h.kpiService.CreateMetric(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "KPI metric created successfully", metric)
}

// GetMetric implements KpiHandler.
func (h *KpiHandlerImpl) GetMetric(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Metric ID is required", nil)
		return
	}

	metric, err := h.kpiService.GetMetric(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, metric)
}

// ListMetrics implements KpiHandler.
func (h *KpiHandlerImpl) ListMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.kpiService.ListMetrics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, metrics)
}

// UpdateMetric implements KpiHandler.
func (h *KpiHandlerImpl) UpdateMetric(w http.ResponseWriter, r *http.Request) {
	var req kpi.UpdateMetricRequest

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Metric ID is required", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateMetric decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	metric, err := h.kpiService.UpdateMetric(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI metric updated successfully", metric)
}

// DeleteMetric implements KpiHandler.
func (h *KpiHandlerImpl) DeleteMetric(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Metric ID is required", nil)
		return
	}

	if err := h.kpiService.DeleteMetric(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI metric deleted successfully", nil)
}

// AssignEmployees implements KpiHandler.
func (h *KpiHandlerImpl) AssignEmployees(w http.ResponseWriter, r *http.Request) {
	var req kpi.AssignEmployeesRequest

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Metric ID is required", nil)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignEmployees decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.MetricID = id

	metric, err := h.kpiService.AssignEmployees(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI metric assignments updated successfully", metric)
}

// SubmitResult implements KpiHandler.
func (h *KpiHandlerImpl) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req kpi.SubmitResultRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitResult decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kpiService.SubmitResult(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "KPI result submitted successfully", result)
}

// ListResults implements KpiHandler.
func (h *KpiHandlerImpl) ListResults(w http.ResponseWriter, r *http.Request) {
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

	results, err := h.kpiService.ListResults(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// BonusTotal implements KpiHandler.
func (h *KpiHandlerImpl) BonusTotal(w http.ResponseWriter, r *http.Request) {
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

	total, err := h.kpiService.BonusTotal(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, total)
}

func NewKpiHandler(kpiService kpi.KpiService) KpiHandler {
	return &KpiHandlerImpl{kpiService: kpiService}
}
