package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
)

var (
	hundred = decimal.NewFromInt(100)
	// Pension withholding is a fixed 1% of total accrual regardless of settings.
	pensionRate = decimal.RequireFromString("0.01")
)

// CalcInput is everything the accrual breakdown depends on. Settings values
// are passed in explicitly so the calculation stays pure and reentrant.
type CalcInput struct {
	WorkedDays  int
	WorkingDays int
	HolidayDays int
	// BaseSalary is the resolved compensation basis (fixed salary, or
	// rate * minimum salary).
	BaseSalary decimal.Decimal

	Bonus              decimal.Decimal
	ExtraPay           decimal.Decimal
	VacationPayCurrent decimal.Decimal
	VacationPayNext    decimal.Decimal
	SickLeavePayment   decimal.Decimal
	AdvancePayment     decimal.Decimal
	OtherDeductions    decimal.Decimal

	IncomeTaxRate decimal.Decimal // percent
	FsznRate      decimal.Decimal // percent
	InsuranceRate decimal.Decimal // percent
	BenefitAmount decimal.Decimal
	TaxDeduction  decimal.Decimal
}

// Compute derives the full accrual-and-deduction breakdown for one
// employee-month. Every monetary step is rounded to cents immediately; the
// cumulative rounding this produces is intentional and must not be "fixed" by
// computing at full precision.
//
// A zero daily-rate denominator or a missing base salary yields a zero salary
// accrual instead of an error: a half-configured month must not block data
// entry, the operator sees the zero and corrects upstream.
func Compute(in CalcInput) payroll.Breakdown {
	salaryAccrued := decimal.Zero
	if denominator := in.WorkingDays + in.HolidayDays; denominator > 0 && in.BaseSalary.IsPositive() {
		dailyRate := in.BaseSalary.Div(decimal.NewFromInt(int64(denominator))).Round(2)
		salaryAccrued = dailyRate.Mul(decimal.NewFromInt(int64(in.WorkedDays))).Round(2)
	}

	totalAccrued := salaryAccrued.
		Add(in.Bonus).
		Add(in.ExtraPay).
		Add(in.VacationPayCurrent).
		Add(in.VacationPayNext).
		Add(in.SickLeavePayment).
		Round(2)

	// Below-threshold tax relief: strictly below the benefit ceiling, a flat
	// deduction comes off the taxable base.
	taxableBase := totalAccrued
	taxBenefitApplied := false
	if totalAccrued.LessThan(in.BenefitAmount) {
		taxBenefitApplied = true
		taxableBase = totalAccrued.Sub(in.TaxDeduction)
		if taxableBase.IsNegative() {
			taxableBase = decimal.Zero
		}
	}

	incomeTax := taxableBase.Mul(in.IncomeTaxRate).Div(hundred).Round(2)
	pensionTax := totalAccrued.Mul(pensionRate).Round(2)

	// The advance is disbursed separately and nets out against the payable
	// amount below, so it is not part of deductions.
	totalDeductions := incomeTax.Add(pensionTax).Add(in.OtherDeductions).Round(2)
	totalPayable := totalAccrued.Sub(totalDeductions).Round(2)
	payableWithoutAdvance := totalPayable.Sub(in.AdvancePayment).Round(2)

	// Employer-side contributions, on top of gross, not withheld.
	fsznTax := totalAccrued.Mul(in.FsznRate).Div(hundred).Round(2)
	insuranceTax := totalAccrued.Mul(in.InsuranceRate).Div(hundred).Round(2)
	totalEmployerCost := totalPayable.Add(fsznTax).Add(insuranceTax).Round(2)

	return payroll.Breakdown{
		SalaryAccrued:         salaryAccrued,
		TotalAccrued:          totalAccrued,
		IncomeTax:             incomeTax,
		PensionTax:            pensionTax,
		TotalDeductions:       totalDeductions,
		TotalPayable:          totalPayable,
		PayableWithoutAdvance: payableWithoutAdvance,
		FsznTax:               fsznTax,
		InsuranceTax:          insuranceTax,
		TotalEmployerCost:     totalEmployerCost,
		IsTaxBenefitApplied:   taxBenefitApplied,
	}
}
