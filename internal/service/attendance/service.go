package attendance

import (
	"context"
	"time"

	"github.com/staffdesk/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) SaveSheet(ctx context.Context, req attendance.SaveSheetRequest) (attendance.SheetResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SheetResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SheetResponse{}, err
	}

	days := make([]attendance.Day, 0, len(req.Days))
	for _, d := range req.Days {
		date, _ := time.Parse("2006-01-02", d.Date)
		days = append(days, attendance.Day{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Status:     d.Status,
		})
	}

	if err := s.attendanceRepo.ReplaceMonth(ctx, req.EmployeeID, req.Year, req.Month, days); err != nil {
		return attendance.SheetResponse{}, err
	}

	return s.GetSheet(ctx, req.EmployeeID, req.Year, req.Month)
}

func (s *AttendanceServiceImpl) GetSheet(ctx context.Context, employeeID string, year, month int) (attendance.SheetResponse, error) {
	entries, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.SheetResponse{}, err
	}

	merged := MergeDays(entries)
	days := make([]attendance.DayResponse, 0, len(merged))
	for _, d := range merged {
		days = append(days, attendance.DayResponse{
			Date:   d.Date.Format("2006-01-02"),
			Status: d.Status,
		})
	}

	return attendance.SheetResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Days:       days,
	}, nil
}

func (s *AttendanceServiceImpl) WorkedDays(ctx context.Context, employeeID string, year, month int) (attendance.WorkedDaysResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.WorkedDaysResponse{}, err
	}

	entries, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.WorkedDaysResponse{}, err
	}

	return attendance.WorkedDaysResponse{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		WorkedDays: CountWorkedDays(entries, year, month, emp.TerminationDate),
	}, nil
}
