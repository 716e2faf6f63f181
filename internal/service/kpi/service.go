package kpi

import (
	"context"

	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/validator"
)

type KpiServiceImpl struct {
	db           *database.DB
	kpiRepo      kpi.KpiRepository
	employeeRepo employee.EmployeeRepository
}

func NewKpiService(
	db *database.DB,
	kpiRepo kpi.KpiRepository,
	employeeRepo employee.EmployeeRepository,
) kpi.KpiService {
	return &KpiServiceImpl{
		db:           db,
		kpiRepo:      kpiRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *KpiServiceImpl) CreateMetric(ctx context.Context, req kpi.CreateMetricRequest) (kpi.MetricResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.MetricResponse{}, err
	}

	metric, err := s.kpiRepo.CreateMetric(ctx, kpi.Metric{
		Name:     req.Name,
		Type:     req.Type,
		BaseRate: req.BaseRate,
		Tiers:    req.Tiers,
	})
	if err != nil {
		return kpi.MetricResponse{}, err
	}

	return kpi.NewMetricResponse(metric), nil
}

func (s *KpiServiceImpl) GetMetric(ctx context.Context, id string) (kpi.MetricResponse, error) {
	metric, err := s.kpiRepo.GetMetricByID(ctx, id)
	if err != nil {
		return kpi.MetricResponse{}, err
	}
	return kpi.NewMetricResponse(metric), nil
}

func (s *KpiServiceImpl) ListMetrics(ctx context.Context) ([]kpi.MetricResponse, error) {
	metrics, err := s.kpiRepo.ListMetrics(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.MetricResponse, 0, len(metrics))
	for _, m := range metrics {
		responses = append(responses, kpi.NewMetricResponse(m))
	}
	return responses, nil
}

func (s *KpiServiceImpl) UpdateMetric(ctx context.Context, req kpi.UpdateMetricRequest) (kpi.MetricResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.MetricResponse{}, err
	}

	if err := s.kpiRepo.UpdateMetric(ctx, req); err != nil {
		return kpi.MetricResponse{}, err
	}

	return s.GetMetric(ctx, req.ID)
}

func (s *KpiServiceImpl) DeleteMetric(ctx context.Context, id string) error {
	return s.kpiRepo.DeleteMetric(ctx, id)
}

func (s *KpiServiceImpl) AssignEmployees(ctx context.Context, req kpi.AssignEmployeesRequest) (kpi.MetricResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.MetricResponse{}, err
	}

	for _, employeeID := range req.EmployeeIDs {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return kpi.MetricResponse{}, err
		}
	}

	if err := s.kpiRepo.ReplaceAssignments(ctx, req.MetricID, req.EmployeeIDs); err != nil {
		return kpi.MetricResponse{}, err
	}

	return s.GetMetric(ctx, req.MetricID)
}

func (s *KpiServiceImpl) SubmitResult(ctx context.Context, req kpi.SubmitResultRequest) (kpi.ResultResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ResultResponse{}, err
	}

	metric, err := s.kpiRepo.GetMetricByID(ctx, req.MetricID)
	if err != nil {
		return kpi.ResultResponse{}, err
	}
	if !validator.IsInSlice(req.EmployeeID, metric.EmployeeIDs) {
		return kpi.ResultResponse{}, kpi.ErrMetricNotAssigned
	}

	result, err := s.kpiRepo.UpsertResult(ctx, kpi.Result{
		EmployeeID:      req.EmployeeID,
		MetricID:        req.MetricID,
		PeriodYear:      req.PeriodYear,
		PeriodMonth:     req.PeriodMonth,
		Value:           req.Value,
		CalculatedBonus: CalculateBonus(metric, req.Value),
	})
	if err != nil {
		return kpi.ResultResponse{}, err
	}

	return kpi.NewResultResponse(result), nil
}

func (s *KpiServiceImpl) ListResults(ctx context.Context, employeeID string, year, month int) ([]kpi.ResultResponse, error) {
	results, err := s.kpiRepo.ListResultsByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.ResultResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, kpi.NewResultResponse(res))
	}
	return responses, nil
}

func (s *KpiServiceImpl) BonusTotal(ctx context.Context, employeeID string, year, month int) (kpi.BonusTotalResponse, error) {
	results, err := s.kpiRepo.ListResultsByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		return kpi.BonusTotalResponse{}, err
	}

	return kpi.BonusTotalResponse{
		EmployeeID:  employeeID,
		PeriodYear:  year,
		PeriodMonth: month,
		Total:       SumBonuses(results),
	}, nil
}
