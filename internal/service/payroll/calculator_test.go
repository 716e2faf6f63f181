package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseInput() CalcInput {
	return CalcInput{
		WorkedDays:    21,
		WorkingDays:   20,
		HolidayDays:   1,
		BaseSalary:    dec("2100"),
		IncomeTaxRate: dec("13"),
		FsznRate:      dec("34"),
		InsuranceRate: dec("0.6"),
		BenefitAmount: dec("0"),
		TaxDeduction:  dec("0"),
	}
}

func TestCompute_DailyRateAndSalaryAccrued(t *testing.T) {
	// 2100 / (20+1) = 100 daily, 100 * 21 = 2100 accrued
	b := Compute(baseInput())

	assert.True(t, b.SalaryAccrued.Equal(dec("2100")), "salary accrued = %s", b.SalaryAccrued)
	assert.True(t, b.TotalAccrued.Equal(dec("2100")))
}

func TestCompute_ZeroDenominatorYieldsZeroSalary(t *testing.T) {
	in := baseInput()
	in.WorkingDays = 0
	in.HolidayDays = 0
	in.Bonus = dec("300")

	b := Compute(in)

	assert.True(t, b.SalaryAccrued.IsZero())
	// The rest of the breakdown still flows from the remaining inputs.
	assert.True(t, b.TotalAccrued.Equal(dec("300")))
}

func TestCompute_MissingBaseSalaryYieldsZeroSalary(t *testing.T) {
	in := baseInput()
	in.BaseSalary = decimal.Zero

	b := Compute(in)

	assert.True(t, b.SalaryAccrued.IsZero())
	assert.True(t, b.TotalAccrued.IsZero())
}

func TestCompute_TaxBenefit(t *testing.T) {
	tests := []struct {
		name          string
		totalAccrued  string
		benefitAmount string
		taxDeduction  string
		wantApplied   bool
		wantIncomeTax string
	}{
		{
			// taxable base 1000-200=800, 13% -> 104
			name:          "below threshold applies deduction",
			totalAccrued:  "1000",
			benefitAmount: "1500",
			taxDeduction:  "200",
			wantApplied:   true,
			wantIncomeTax: "104",
		},
		{
			// threshold is exclusive: equal accrual gets no benefit
			name:          "at threshold no benefit",
			totalAccrued:  "1500",
			benefitAmount: "1500",
			taxDeduction:  "200",
			wantApplied:   false,
			wantIncomeTax: "195",
		},
		{
			name:          "deduction larger than accrual clamps to zero",
			totalAccrued:  "150",
			benefitAmount: "1500",
			taxDeduction:  "200",
			wantApplied:   true,
			wantIncomeTax: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := CalcInput{
				// feed the accrual through the bonus field to keep the
				// salary part out of the way
				Bonus:         dec(tt.totalAccrued),
				IncomeTaxRate: dec("13"),
				BenefitAmount: dec(tt.benefitAmount),
				TaxDeduction:  dec(tt.taxDeduction),
			}

			b := Compute(in)

			assert.Equal(t, tt.wantApplied, b.IsTaxBenefitApplied)
			assert.True(t, b.IncomeTax.Equal(dec(tt.wantIncomeTax)), "income tax = %s", b.IncomeTax)
		})
	}
}

func TestCompute_PensionTaxIsFixedOnePercent(t *testing.T) {
	in := baseInput()
	b := Compute(in)

	assert.True(t, b.PensionTax.Equal(dec("21")), "pension tax = %s", b.PensionTax)
}

func TestCompute_AdvanceExcludedFromDeductions(t *testing.T) {
	in := baseInput()
	in.AdvancePayment = dec("500")
	in.OtherDeductions = dec("50")

	b := Compute(in)

	// deductions = incomeTax + pensionTax + other, never the advance
	wantDeductions := b.IncomeTax.Add(b.PensionTax).Add(dec("50"))
	assert.True(t, b.TotalDeductions.Equal(wantDeductions))
	assert.True(t, b.TotalPayable.Equal(b.TotalAccrued.Sub(b.TotalDeductions)))
	assert.True(t, b.PayableWithoutAdvance.Equal(b.TotalPayable.Sub(dec("500"))))
}

func TestCompute_EmployerContributions(t *testing.T) {
	b := Compute(baseInput())

	// 34% and 0.6% of 2100
	assert.True(t, b.FsznTax.Equal(dec("714")), "fszn = %s", b.FsznTax)
	assert.True(t, b.InsuranceTax.Equal(dec("12.6")), "insurance = %s", b.InsuranceTax)
	assert.True(t, b.TotalEmployerCost.Equal(b.TotalPayable.Add(b.FsznTax).Add(b.InsuranceTax)))
}

func TestCompute_PayableIdentities(t *testing.T) {
	in := baseInput()
	in.Bonus = dec("123.45")
	in.ExtraPay = dec("67.89")
	in.VacationPayCurrent = dec("250.10")
	in.VacationPayNext = dec("99.99")
	in.SickLeavePayment = dec("10.01")
	in.AdvancePayment = dec("400")
	in.OtherDeductions = dec("33.33")
	in.BenefitAmount = dec("5000")
	in.TaxDeduction = dec("170")

	b := Compute(in)

	require.True(t, b.TotalPayable.Equal(b.TotalAccrued.Sub(b.TotalDeductions)))
	require.True(t, b.PayableWithoutAdvance.Equal(b.TotalPayable.Sub(in.AdvancePayment)))
}

func TestCompute_Idempotent(t *testing.T) {
	in := baseInput()
	in.Bonus = dec("77.77")
	in.OtherDeductions = dec("13.13")

	first := Compute(in)
	second := Compute(in)

	assert.Equal(t, first, second)
}

func TestCompute_RoundsEachStep(t *testing.T) {
	in := CalcInput{
		WorkedDays:    20,
		WorkingDays:   21,
		HolidayDays:   0,
		BaseSalary:    dec("1000"),
		IncomeTaxRate: dec("13"),
	}

	b := Compute(in)

	// 1000/21 = 47.619... -> 47.62 daily, then 47.62*20 = 952.40; computing
	// the fused expression would give 952.38.
	assert.True(t, b.SalaryAccrued.Equal(dec("952.40")), "salary accrued = %s", b.SalaryAccrued)
}
