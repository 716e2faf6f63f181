package main

import (
	"fmt"
	"net/http"

	"github.com/staffdesk/payroll-backend-go/internal/config"
	appHTTP "github.com/staffdesk/payroll-backend-go/internal/handler/http"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
	"github.com/staffdesk/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/staffdesk/payroll-backend-go/internal/service/employee"
	kpiService "github.com/staffdesk/payroll-backend-go/internal/service/kpi"
	payrollService "github.com/staffdesk/payroll-backend-go/internal/service/payroll"
	vacationService "github.com/staffdesk/payroll-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	kpiRepo := postgresql.NewKpiRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	kpiSvc := kpiService.NewKpiService(db, kpiRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceSvc, kpiSvc)
	vacationSvc := vacationService.NewVacationService(db, vacationRepo, payrollRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	kpiHandler := appHTTP.NewKpiHandler(kpiSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)

	router := appHTTP.NewRouter(
		cfg,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		kpiHandler,
		vacationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
