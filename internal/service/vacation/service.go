package vacation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/domain/vacation"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type VacationServiceImpl struct {
	db           *database.DB
	vacationRepo vacation.VacationRepository
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewVacationService(
	db *database.DB,
	vacationRepo vacation.VacationRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) vacation.VacationService {
	return &VacationServiceImpl{
		db:           db,
		vacationRepo: vacationRepo,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *VacationServiceImpl) Create(ctx context.Context, req vacation.CreateRequestRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	request := vacation.Request{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		DaysCount:  req.DaysCount,
		Status:     vacation.StatusPending,
	}

	periodStart, periodEnd := LookbackWindow(startDate)
	history, err := s.payrollRepo.ListAccrualHistory(ctx,
		req.EmployeeID,
		periodStart.Year(), int(periodStart.Month()),
		periodEnd.Year(), int(periodEnd.Month()),
	)
	if err != nil {
		// A failed history lookup must not block the request: store a zero
		// payment and let the operator correct it by hand.
		slog.Warn("vacation payment degraded to zero, accrual history lookup failed",
			slog.String("employee_id", req.EmployeeID),
			slog.Any("error", err),
		)
		request.PaymentAmount = decimal.Zero
		request.AverageSalary = decimal.Zero
		request.PeriodStart = startDate
		request.PeriodEnd = endDate
	} else {
		fallback := fallbackMonthlyEarnings(emp)
		averageMonthly, averageDaily := AverageEarnings(history, fallback)
		request.PaymentAmount = PaymentAmount(averageDaily, req.DaysCount)
		request.AverageSalary = averageMonthly
		request.PeriodStart = periodStart
		request.PeriodEnd = periodEnd
	}

	created, err := s.vacationRepo.Create(ctx, request)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	return s.toResponse(ctx, created)
}

// fallbackMonthlyEarnings is the annualized base used when the lookback window
// has no earnings at all: the fixed salary when set, otherwise the FTE rate
// against the post-cutover minimum salary base.
func fallbackMonthlyEarnings(emp employee.Employee) decimal.Decimal {
	if emp.BaseSalary != nil && emp.BaseSalary.IsPositive() {
		return *emp.BaseSalary
	}
	return emp.Rate.Mul(newMinSalaryBase)
}

func (s *VacationServiceImpl) Get(ctx context.Context, id string) (vacation.RequestResponse, error) {
	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	return s.toResponse(ctx, request)
}

func (s *VacationServiceImpl) List(ctx context.Context, filter vacation.RequestFilter) ([]vacation.RequestResponse, error) {
	requests, err := s.vacationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	paymentDay := s.salaryPaymentDay(ctx)
	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, vacation.NewRequestResponse(req, ShouldPayInPreviousMonth(req.StartDate, paymentDay)))
	}
	return responses, nil
}

func (s *VacationServiceImpl) UpdateStatus(ctx context.Context, req vacation.UpdateStatusRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	current, err := s.vacationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	if !validTransition(current.Status, req.Status) {
		if current.Status == vacation.StatusRejected || current.Status == vacation.StatusCompleted {
			return vacation.RequestResponse{}, vacation.ErrRequestAlreadyProcessed
		}
		return vacation.RequestResponse{}, vacation.ErrInvalidStatusTransition
	}

	if err := s.vacationRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return vacation.RequestResponse{}, err
	}

	current.Status = req.Status
	return s.toResponse(ctx, current)
}

func validTransition(from, to vacation.Status) bool {
	switch from {
	case vacation.StatusPending:
		return to == vacation.StatusApproved || to == vacation.StatusRejected
	case vacation.StatusApproved:
		return to == vacation.StatusCompleted
	}
	return false
}

func (s *VacationServiceImpl) toResponse(ctx context.Context, request vacation.Request) (vacation.RequestResponse, error) {
	return vacation.NewRequestResponse(request, ShouldPayInPreviousMonth(request.StartDate, s.salaryPaymentDay(ctx))), nil
}

// salaryPaymentDay reads the configured disbursement day; a missing settings
// row falls back to the default without failing the request.
func (s *VacationServiceImpl) salaryPaymentDay(ctx context.Context) int {
	settings, err := s.payrollRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, payroll.ErrSettingsNotFound) {
			slog.Warn("failed to load payroll settings, using default payment day", slog.Any("error", err))
		}
		return 10
	}
	return settings.SalaryPaymentDay
}
