package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings - process-wide tax and salary parameters. A single row, mutated
// only through the explicit settings-save operation.
type Settings struct {
	ID               string
	MinSalary        decimal.Decimal
	IncomeTaxRate    decimal.Decimal // percent
	FsznRate         decimal.Decimal // percent, employer side
	InsuranceRate    decimal.Decimal // percent, employer side
	BenefitAmount    decimal.Decimal // income threshold for tax relief
	TaxDeduction     decimal.Decimal // flat deduction applied below the threshold
	SalaryPaymentDay int             // day-of-month payroll is disbursed
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkNorm - jurisdiction-mandated standard working time for one calendar
// month. WorkingDays already folds in the shortened pre-holiday days;
// HolidayDays counts how many of them are shortened.
type WorkNorm struct {
	Year        int
	Month       int
	NormHours   decimal.Decimal
	WorkingDays int
	HolidayDays int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Inputs are the user-editable amounts of a payroll record.
type Inputs struct {
	WorkedDays         int
	Bonus              decimal.Decimal
	ExtraPay           decimal.Decimal
	VacationPayCurrent decimal.Decimal
	VacationPayNext    decimal.Decimal
	SickLeavePayment   decimal.Decimal
	AdvancePayment     decimal.Decimal
	OtherDeductions    decimal.Decimal
}

// Breakdown holds the derived amounts of one employee-month accrual. These are
// recomputed on every save, never hand-edited.
type Breakdown struct {
	SalaryAccrued         decimal.Decimal `json:"salary_accrued"`
	TotalAccrued          decimal.Decimal `json:"total_accrued"`
	IncomeTax             decimal.Decimal `json:"income_tax"`
	PensionTax            decimal.Decimal `json:"pension_tax"`
	TotalDeductions       decimal.Decimal `json:"total_deductions"`
	TotalPayable          decimal.Decimal `json:"total_payable"`
	PayableWithoutAdvance decimal.Decimal `json:"payable_without_advance"`
	FsznTax               decimal.Decimal `json:"fszn_tax"`
	InsuranceTax          decimal.Decimal `json:"insurance_tax"`
	TotalEmployerCost     decimal.Decimal `json:"total_employer_cost"`
	IsTaxBenefitApplied   bool            `json:"is_tax_benefit_applied"`
}

// Record - one employee-month accrual, keyed (employee, year, month), at most
// one row per key.
type Record struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int
	Inputs
	Breakdown
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// MonthlyAccrual is a historical month's total accrual, used by the vacation
// average-earnings aggregation.
type MonthlyAccrual struct {
	Year         int
	Month        int
	TotalAccrued decimal.Decimal
}
