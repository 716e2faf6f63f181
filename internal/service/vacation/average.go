package vacation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
)

const (
	// Accruals earned before this period were computed against the old
	// minimum salary base and are rescaled by newMinSalaryBase/oldMinSalaryBase.
	cutoverYear  = 2025
	cutoverMonth = 1
)

var (
	// Average calendar days per month, the jurisdiction's fixed divisor for
	// vacation-pay averaging.
	averageDaysPerMonth = decimal.RequireFromString("29.6")

	newMinSalaryBase = decimal.NewFromInt(735)
	oldMinSalaryBase = decimal.NewFromInt(630)

	twelve = decimal.NewFromInt(12)
)

// LookbackWindow returns the 12-calendar-month averaging window for a
// vacation starting on start: it ends on the last day of the month before the
// start month and opens on the first day of the month 11 months earlier.
func LookbackWindow(start time.Time) (periodStart, periodEnd time.Time) {
	firstOfStartMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodEnd = firstOfStartMonth.AddDate(0, 0, -1)
	periodStart = time.Date(periodEnd.Year(), periodEnd.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	return periodStart, periodEnd
}

func beforeCutover(year, month int) bool {
	if year != cutoverYear {
		return year < cutoverYear
	}
	return month < cutoverMonth
}

// AverageEarnings reduces the window's monthly accruals to an average monthly
// salary and an average daily wage. Pre-cutover months are rescaled by the
// retroactive coefficient exactly at the boundary, not prorated. When no month
// in the window carries earnings, a full year at fallbackMonthly is assumed.
//
// The daily wage is rounded to cents before any caller multiplies it by a day
// count; that ordering is part of the contract.
func AverageEarnings(history []payroll.MonthlyAccrual, fallbackMonthly decimal.Decimal) (averageMonthly, averageDaily decimal.Decimal) {
	totals := make(map[[2]int]decimal.Decimal)
	for _, accrual := range history {
		key := [2]int{accrual.Year, accrual.Month}
		amount := accrual.TotalAccrued
		if beforeCutover(accrual.Year, accrual.Month) {
			amount = amount.Mul(newMinSalaryBase).Div(oldMinSalaryBase)
		}
		totals[key] = totals[key].Add(amount)
	}

	totalEarnings := decimal.Zero
	monthsWithEarnings := 0
	for _, amount := range totals {
		if amount.IsZero() {
			continue
		}
		totalEarnings = totalEarnings.Add(amount)
		monthsWithEarnings++
	}

	if monthsWithEarnings == 0 {
		totalEarnings = fallbackMonthly.Mul(twelve)
		monthsWithEarnings = 12
	}

	averageMonthly = totalEarnings.Div(decimal.NewFromInt(int64(monthsWithEarnings)))
	averageDaily = averageMonthly.Div(averageDaysPerMonth).Round(2)
	return averageMonthly.Round(2), averageDaily
}

// PaymentAmount multiplies the rounded daily wage by the requested days.
func PaymentAmount(averageDaily decimal.Decimal, daysCount int) decimal.Decimal {
	return averageDaily.Mul(decimal.NewFromInt(int64(daysCount))).Round(2)
}

// ShouldPayInPreviousMonth reports whether the vacation payment belongs to the
// payroll month before the vacation's own month: pay must land before the
// vacation starts, so a start on or before the salary payment day means
// processing a cycle early.
func ShouldPayInPreviousMonth(start time.Time, salaryPaymentDay int) bool {
	return start.Day() <= salaryPaymentDay
}
