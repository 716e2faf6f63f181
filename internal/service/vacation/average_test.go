package vacation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLookbackWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		wantStart string
		wantEnd   string
	}{
		{"mid-year", "2025-07-15", "2024-07-01", "2025-06-30"},
		{"january start wraps the year", "2025-01-10", "2024-01-01", "2024-12-31"},
		{"march after leap february", "2024-03-01", "2023-03-01", "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := time.Parse("2006-01-02", tt.start)
			periodStart, periodEnd := LookbackWindow(start)
			assert.Equal(t, tt.wantStart, periodStart.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, periodEnd.Format("2006-01-02"))
		})
	}
}

func TestAverageEarnings_CorrectionBoundary(t *testing.T) {
	// December 2024 is rescaled by 735/630, January 2025 is not.
	history := []payroll.MonthlyAccrual{
		{Year: 2024, Month: 12, TotalAccrued: dec("630")},
		{Year: 2025, Month: 1, TotalAccrued: dec("630")},
	}

	averageMonthly, _ := AverageEarnings(history, decimal.Zero)

	// (630*735/630 + 630) / 2 = (735 + 630) / 2 = 682.50
	assert.True(t, averageMonthly.Equal(dec("682.50")), "average = %s", averageMonthly)
}

func TestAverageEarnings_DailyRoundedBeforeMultiply(t *testing.T) {
	history := []payroll.MonthlyAccrual{
		{Year: 2025, Month: 5, TotalAccrued: dec("1000")},
	}

	_, averageDaily := AverageEarnings(history, decimal.Zero)

	// 1000 / 29.6 = 33.783... -> 33.78 before multiplying by days
	assert.True(t, averageDaily.Equal(dec("33.78")), "daily = %s", averageDaily)
	assert.True(t, PaymentAmount(averageDaily, 14).Equal(dec("472.92")))
}

func TestAverageEarnings_MonthsWithoutEarningsExcluded(t *testing.T) {
	history := []payroll.MonthlyAccrual{
		{Year: 2025, Month: 2, TotalAccrued: dec("900")},
		{Year: 2025, Month: 3, TotalAccrued: dec("0")},
		{Year: 2025, Month: 4, TotalAccrued: dec("1100")},
	}

	averageMonthly, _ := AverageEarnings(history, decimal.Zero)

	// zero month does not dilute the average: (900+1100)/2
	assert.True(t, averageMonthly.Equal(dec("1000")), "average = %s", averageMonthly)
}

func TestAverageEarnings_DuplicateMonthEntriesSummed(t *testing.T) {
	history := []payroll.MonthlyAccrual{
		{Year: 2025, Month: 2, TotalAccrued: dec("400")},
		{Year: 2025, Month: 2, TotalAccrued: dec("600")},
	}

	averageMonthly, _ := AverageEarnings(history, decimal.Zero)

	assert.True(t, averageMonthly.Equal(dec("1000")))
}

func TestAverageEarnings_FallbackWhenNoEarnings(t *testing.T) {
	averageMonthly, averageDaily := AverageEarnings(nil, dec("735"))

	// 735*12/12 = 735 monthly, 735/29.6 -> 24.83 daily
	assert.True(t, averageMonthly.Equal(dec("735")), "average = %s", averageMonthly)
	assert.True(t, averageDaily.Equal(dec("24.83")), "daily = %s", averageDaily)
}

func TestShouldPayInPreviousMonth(t *testing.T) {
	paymentDay := 10

	onPaymentDay, _ := time.Parse("2006-01-02", "2025-06-10")
	afterPaymentDay, _ := time.Parse("2006-01-02", "2025-06-11")

	assert.True(t, ShouldPayInPreviousMonth(onPaymentDay, paymentDay))
	assert.False(t, ShouldPayInPreviousMonth(afterPaymentDay, paymentDay))
}
