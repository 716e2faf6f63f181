package payroll

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/kpi"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db                *database.DB
	payrollRepo       payroll.PayrollRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	kpiService        kpi.KpiService
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	kpiService kpi.KpiService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		payrollRepo:       payrollRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		kpiService:        kpiService,
	}
}

// defaultSettings covers the time before the first explicit settings save.
func defaultSettings() payroll.Settings {
	return payroll.Settings{
		MinSalary:        decimal.NewFromInt(735),
		IncomeTaxRate:    decimal.NewFromInt(13),
		FsznRate:         decimal.NewFromInt(34),
		InsuranceRate:    decimal.RequireFromString("0.6"),
		BenefitAmount:    decimal.Zero,
		TaxDeduction:     decimal.Zero,
		SalaryPaymentDay: 10,
	}
}

func settingsResponse(s payroll.Settings) payroll.SettingsResponse {
	return payroll.SettingsResponse{
		MinSalary:        s.MinSalary,
		IncomeTaxRate:    s.IncomeTaxRate,
		FsznRate:         s.FsznRate,
		InsuranceRate:    s.InsuranceRate,
		BenefitAmount:    s.BenefitAmount,
		TaxDeduction:     s.TaxDeduction,
		SalaryPaymentDay: s.SalaryPaymentDay,
	}
}

// ========== SETTINGS ==========

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, payroll.ErrSettingsNotFound) {
			return settingsResponse(defaultSettings()), nil
		}
		return payroll.SettingsResponse{}, err
	}
	return settingsResponse(settings), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}

	current, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.SettingsResponse{}, err
		}
		current = defaultSettings()
	}

	if req.MinSalary != nil {
		current.MinSalary = *req.MinSalary
	}
	if req.IncomeTaxRate != nil {
		current.IncomeTaxRate = *req.IncomeTaxRate
	}
	if req.FsznRate != nil {
		current.FsznRate = *req.FsznRate
	}
	if req.InsuranceRate != nil {
		current.InsuranceRate = *req.InsuranceRate
	}
	if req.BenefitAmount != nil {
		current.BenefitAmount = *req.BenefitAmount
	}
	if req.TaxDeduction != nil {
		current.TaxDeduction = *req.TaxDeduction
	}
	if req.SalaryPaymentDay != nil {
		current.SalaryPaymentDay = *req.SalaryPaymentDay
	}

	updated, err := s.payrollRepo.UpsertSettings(ctx, current)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}
	return settingsResponse(updated), nil
}

// ========== WORK NORMS ==========

func (s *PayrollServiceImpl) GetWorkNorm(ctx context.Context, year, month int) (payroll.WorkNormResponse, error) {
	norm, err := s.payrollRepo.GetWorkNorm(ctx, year, month)
	if err != nil {
		return payroll.WorkNormResponse{}, err
	}
	return workNormResponse(norm), nil
}

func (s *PayrollServiceImpl) UpsertWorkNorm(ctx context.Context, req payroll.UpsertWorkNormRequest) (payroll.WorkNormResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.WorkNormResponse{}, err
	}

	norm, err := s.payrollRepo.UpsertWorkNorm(ctx, payroll.WorkNorm{
		Year:        req.Year,
		Month:       req.Month,
		NormHours:   req.NormHours,
		WorkingDays: req.WorkingDays,
		HolidayDays: req.HolidayDays,
	})
	if err != nil {
		return payroll.WorkNormResponse{}, err
	}
	return workNormResponse(norm), nil
}

func workNormResponse(n payroll.WorkNorm) payroll.WorkNormResponse {
	return payroll.WorkNormResponse{
		Year:        n.Year,
		Month:       n.Month,
		NormHours:   n.NormHours,
		WorkingDays: n.WorkingDays,
		HolidayDays: n.HolidayDays,
	}
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) Recalculate(ctx context.Context, req payroll.RecalculateRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.RecordResponse{}, err
		}
		settings = defaultSettings()
	}

	// A missing work norm is a configuration error: the calculator degrades
	// to a zero salary accrual rather than refusing the save.
	var norm payroll.WorkNorm
	if n, err := s.payrollRepo.GetWorkNorm(ctx, req.PeriodYear, req.PeriodMonth); err == nil {
		norm = n
	} else if !errors.Is(err, payroll.ErrWorkNormNotFound) {
		return payroll.RecordResponse{}, err
	}

	workedDays, err := s.resolveWorkedDays(ctx, req)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	bonus, err := s.resolveBonus(ctx, req)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	breakdown := Compute(CalcInput{
		WorkedDays:         workedDays,
		WorkingDays:        norm.WorkingDays,
		HolidayDays:        norm.HolidayDays,
		BaseSalary:         emp.EffectiveBaseSalary(settings.MinSalary),
		Bonus:              bonus,
		ExtraPay:           req.ExtraPay,
		VacationPayCurrent: req.VacationPayCurrent,
		VacationPayNext:    req.VacationPayNext,
		SickLeavePayment:   req.SickLeavePayment,
		AdvancePayment:     req.AdvancePayment,
		OtherDeductions:    req.OtherDeductions,
		IncomeTaxRate:      settings.IncomeTaxRate,
		FsznRate:           settings.FsznRate,
		InsuranceRate:      settings.InsuranceRate,
		BenefitAmount:      settings.BenefitAmount,
		TaxDeduction:       settings.TaxDeduction,
	})

	record, err := s.payrollRepo.UpsertRecord(ctx, payroll.Record{
		EmployeeID:  req.EmployeeID,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		Inputs: payroll.Inputs{
			WorkedDays:         workedDays,
			Bonus:              bonus,
			ExtraPay:           req.ExtraPay,
			VacationPayCurrent: req.VacationPayCurrent,
			VacationPayNext:    req.VacationPayNext,
			SickLeavePayment:   req.SickLeavePayment,
			AdvancePayment:     req.AdvancePayment,
			OtherDeductions:    req.OtherDeductions,
		},
		Breakdown: breakdown,
	})
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return payroll.NewRecordResponse(record), nil
}

// resolveWorkedDays takes the explicit value when present, otherwise counts
// the attendance sheet.
func (s *PayrollServiceImpl) resolveWorkedDays(ctx context.Context, req payroll.RecalculateRequest) (int, error) {
	if req.WorkedDays != nil {
		return *req.WorkedDays, nil
	}
	resp, err := s.attendanceService.WorkedDays(ctx, req.EmployeeID, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return 0, err
	}
	return resp.WorkedDays, nil
}

// resolveBonus takes the explicit value when present, otherwise pulls the
// employee's aggregated KPI bonus for the period so the operator no longer
// retypes it by hand.
func (s *PayrollServiceImpl) resolveBonus(ctx context.Context, req payroll.RecalculateRequest) (decimal.Decimal, error) {
	if req.Bonus != nil {
		return *req.Bonus, nil
	}
	total, err := s.kpiService.BonusTotal(ctx, req.EmployeeID, req.PeriodYear, req.PeriodMonth)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Total, nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, employeeID string, year, month int) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByEmployeePeriod(ctx, employeeID, year, month)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.NewRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, year, month int) ([]payroll.RecordResponse, error) {
	records, err := s.payrollRepo.ListRecordsByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.NewRecordResponse(rec))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PreviewRequest) (payroll.Breakdown, error) {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrSettingsNotFound) {
			return payroll.Breakdown{}, err
		}
		settings = defaultSettings()
	}

	return Compute(CalcInput{
		WorkedDays:         req.WorkedDays,
		WorkingDays:        req.WorkingDays,
		HolidayDays:        req.HolidayDays,
		BaseSalary:         req.BaseSalary,
		Bonus:              req.Bonus,
		ExtraPay:           req.ExtraPay,
		VacationPayCurrent: req.VacationPayCurrent,
		VacationPayNext:    req.VacationPayNext,
		SickLeavePayment:   req.SickLeavePayment,
		AdvancePayment:     req.AdvancePayment,
		OtherDeductions:    req.OtherDeductions,
		IncomeTaxRate:      settings.IncomeTaxRate,
		FsznRate:           settings.FsznRate,
		InsuranceRate:      settings.InsuranceRate,
		BenefitAmount:      settings.BenefitAmount,
		TaxDeduction:       settings.TaxDeduction,
	}), nil
}
