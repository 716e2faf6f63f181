package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== SETTINGS ==========

// Settings live in a single row; the fixed id keeps the upsert honest.
const settingsRowID = "default"

func (r *payrollRepository) GetSettings(ctx context.Context) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, min_salary, income_tax_rate, fszn_rate, insurance_rate,
			   benefit_amount, tax_deduction, salary_payment_day,
			   created_at, updated_at
		FROM payroll_settings
		WHERE id = $1
	`

	var s payroll.Settings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.ID, &s.MinSalary, &s.IncomeTaxRate, &s.FsznRate, &s.InsuranceRate,
		&s.BenefitAmount, &s.TaxDeduction, &s.SalaryPaymentDay,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Settings{}, payroll.ErrSettingsNotFound
		}
		return payroll.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) UpsertSettings(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (
			id, min_salary, income_tax_rate, fszn_rate, insurance_rate,
			benefit_amount, tax_deduction, salary_payment_day
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			min_salary = EXCLUDED.min_salary,
			income_tax_rate = EXCLUDED.income_tax_rate,
			fszn_rate = EXCLUDED.fszn_rate,
			insurance_rate = EXCLUDED.insurance_rate,
			benefit_amount = EXCLUDED.benefit_amount,
			tax_deduction = EXCLUDED.tax_deduction,
			salary_payment_day = EXCLUDED.salary_payment_day,
			updated_at = NOW()
		RETURNING id, min_salary, income_tax_rate, fszn_rate, insurance_rate,
			benefit_amount, tax_deduction, salary_payment_day, created_at, updated_at
	`

	var s payroll.Settings
	err := q.QueryRow(ctx, query,
		settingsRowID, settings.MinSalary, settings.IncomeTaxRate, settings.FsznRate,
		settings.InsuranceRate, settings.BenefitAmount, settings.TaxDeduction,
		settings.SalaryPaymentDay,
	).Scan(
		&s.ID, &s.MinSalary, &s.IncomeTaxRate, &s.FsznRate, &s.InsuranceRate,
		&s.BenefitAmount, &s.TaxDeduction, &s.SalaryPaymentDay,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}

// ========== WORK NORMS ==========

func (r *payrollRepository) GetWorkNorm(ctx context.Context, year, month int) (payroll.WorkNorm, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT year, month, norm_hours, working_days, holiday_days, created_at, updated_at
		FROM work_norms
		WHERE year = $1 AND month = $2
	`

	var n payroll.WorkNorm
	err := q.QueryRow(ctx, query, year, month).Scan(
		&n.Year, &n.Month, &n.NormHours, &n.WorkingDays, &n.HolidayDays,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.WorkNorm{}, payroll.ErrWorkNormNotFound
		}
		return payroll.WorkNorm{}, fmt.Errorf("failed to get work norm: %w", err)
	}

	return n, nil
}

func (r *payrollRepository) UpsertWorkNorm(ctx context.Context, norm payroll.WorkNorm) (payroll.WorkNorm, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_norms (year, month, norm_hours, working_days, holiday_days)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (year, month) DO UPDATE SET
			norm_hours = EXCLUDED.norm_hours,
			working_days = EXCLUDED.working_days,
			holiday_days = EXCLUDED.holiday_days,
			updated_at = NOW()
		RETURNING year, month, norm_hours, working_days, holiday_days, created_at, updated_at
	`

	var n payroll.WorkNorm
	err := q.QueryRow(ctx, query,
		norm.Year, norm.Month, norm.NormHours, norm.WorkingDays, norm.HolidayDays,
	).Scan(
		&n.Year, &n.Month, &n.NormHours, &n.WorkingDays, &n.HolidayDays,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return payroll.WorkNorm{}, fmt.Errorf("failed to upsert work norm: %w", err)
	}

	return n, nil
}

// ========== RECORDS ==========

const recordColumns = `
	r.id, r.employee_id, r.period_year, r.period_month,
	r.worked_days, r.bonus, r.extra_pay, r.vacation_pay_current, r.vacation_pay_next,
	r.sick_leave_payment, r.advance_payment, r.other_deductions,
	r.salary_accrued, r.total_accrued, r.income_tax, r.pension_tax,
	r.total_deductions, r.total_payable, r.payable_without_advance,
	r.fszn_tax, r.insurance_tax, r.total_employer_cost, r.is_tax_benefit_applied,
	r.created_at, r.updated_at`

const recordReturning = `
	id, employee_id, period_year, period_month,
	worked_days, bonus, extra_pay, vacation_pay_current, vacation_pay_next,
	sick_leave_payment, advance_payment, other_deductions,
	salary_accrued, total_accrued, income_tax, pension_tax,
	total_deductions, total_payable, payable_without_advance,
	fszn_tax, insurance_tax, total_employer_cost, is_tax_benefit_applied,
	created_at, updated_at`

func scanRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodYear, &rec.PeriodMonth,
		&rec.WorkedDays, &rec.Bonus, &rec.ExtraPay, &rec.VacationPayCurrent, &rec.VacationPayNext,
		&rec.SickLeavePayment, &rec.AdvancePayment, &rec.OtherDeductions,
		&rec.SalaryAccrued, &rec.TotalAccrued, &rec.IncomeTax, &rec.PensionTax,
		&rec.TotalDeductions, &rec.TotalPayable, &rec.PayableWithoutAdvance,
		&rec.FsznTax, &rec.InsuranceTax, &rec.TotalEmployerCost, &rec.IsTaxBenefitApplied,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *payrollRepository) UpsertRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	// Last write wins on the (employee, year, month) key.
	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_year, period_month,
			worked_days, bonus, extra_pay, vacation_pay_current, vacation_pay_next,
			sick_leave_payment, advance_payment, other_deductions,
			salary_accrued, total_accrued, income_tax, pension_tax,
			total_deductions, total_payable, payable_without_advance,
			fszn_tax, insurance_tax, total_employer_cost, is_tax_benefit_applied
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (employee_id, period_year, period_month) DO UPDATE SET
			worked_days = EXCLUDED.worked_days,
			bonus = EXCLUDED.bonus,
			extra_pay = EXCLUDED.extra_pay,
			vacation_pay_current = EXCLUDED.vacation_pay_current,
			vacation_pay_next = EXCLUDED.vacation_pay_next,
			sick_leave_payment = EXCLUDED.sick_leave_payment,
			advance_payment = EXCLUDED.advance_payment,
			other_deductions = EXCLUDED.other_deductions,
			salary_accrued = EXCLUDED.salary_accrued,
			total_accrued = EXCLUDED.total_accrued,
			income_tax = EXCLUDED.income_tax,
			pension_tax = EXCLUDED.pension_tax,
			total_deductions = EXCLUDED.total_deductions,
			total_payable = EXCLUDED.total_payable,
			payable_without_advance = EXCLUDED.payable_without_advance,
			fszn_tax = EXCLUDED.fszn_tax,
			insurance_tax = EXCLUDED.insurance_tax,
			total_employer_cost = EXCLUDED.total_employer_cost,
			is_tax_benefit_applied = EXCLUDED.is_tax_benefit_applied,
			updated_at = NOW()
		RETURNING ` + recordReturning

	rec, err := scanRecord(q.QueryRow(ctx, query,
		uuid.NewString(), record.EmployeeID, record.PeriodYear, record.PeriodMonth,
		record.WorkedDays, record.Bonus, record.ExtraPay, record.VacationPayCurrent, record.VacationPayNext,
		record.SickLeavePayment, record.AdvancePayment, record.OtherDeductions,
		record.SalaryAccrued, record.TotalAccrued, record.IncomeTax, record.PensionTax,
		record.TotalDeductions, record.TotalPayable, record.PayableWithoutAdvance,
		record.FsznTax, record.InsuranceTax, record.TotalEmployerCost, record.IsTaxBenefitApplied,
	))
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `, e.full_name
		FROM payroll_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1 AND r.period_year = $2 AND r.period_month = $3
	`

	var rec payroll.Record
	var employeeName string
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodYear, &rec.PeriodMonth,
		&rec.WorkedDays, &rec.Bonus, &rec.ExtraPay, &rec.VacationPayCurrent, &rec.VacationPayNext,
		&rec.SickLeavePayment, &rec.AdvancePayment, &rec.OtherDeductions,
		&rec.SalaryAccrued, &rec.TotalAccrued, &rec.IncomeTax, &rec.PensionTax,
		&rec.TotalDeductions, &rec.TotalPayable, &rec.PayableWithoutAdvance,
		&rec.FsznTax, &rec.InsuranceTax, &rec.TotalEmployerCost, &rec.IsTaxBenefitApplied,
		&rec.CreatedAt, &rec.UpdatedAt, &employeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	rec.EmployeeName = &employeeName
	return rec, nil
}

func (r *payrollRepository) ListRecordsByPeriod(ctx context.Context, year, month int) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `, e.full_name
		FROM payroll_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.period_year = $1 AND r.period_month = $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		var employeeName string
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodYear, &rec.PeriodMonth,
			&rec.WorkedDays, &rec.Bonus, &rec.ExtraPay, &rec.VacationPayCurrent, &rec.VacationPayNext,
			&rec.SickLeavePayment, &rec.AdvancePayment, &rec.OtherDeductions,
			&rec.SalaryAccrued, &rec.TotalAccrued, &rec.IncomeTax, &rec.PensionTax,
			&rec.TotalDeductions, &rec.TotalPayable, &rec.PayableWithoutAdvance,
			&rec.FsznTax, &rec.InsuranceTax, &rec.TotalEmployerCost, &rec.IsTaxBenefitApplied,
			&rec.CreatedAt, &rec.UpdatedAt, &employeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		rec.EmployeeName = &employeeName
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) ListAccrualHistory(ctx context.Context, employeeID string, fromYear, fromMonth, toYear, toMonth int) ([]payroll.MonthlyAccrual, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT period_year, period_month, total_accrued
		FROM payroll_records
		WHERE employee_id = $1
		  AND (period_year * 100 + period_month) BETWEEN $2 AND $3
		ORDER BY period_year, period_month
	`

	rows, err := q.Query(ctx, query, employeeID, fromYear*100+fromMonth, toYear*100+toMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to list accrual history: %w", err)
	}
	defer rows.Close()

	var history []payroll.MonthlyAccrual
	for rows.Next() {
		var acc payroll.MonthlyAccrual
		if err := rows.Scan(&acc.Year, &acc.Month, &acc.TotalAccrued); err != nil {
			return nil, fmt.Errorf("failed to scan accrual history row: %w", err)
		}
		history = append(history, acc)
	}

	return history, rows.Err()
}
