package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	FullName        string
	Position        string
	HireDate        time.Time
	TerminationDate *time.Time
	// Rate is the fractional FTE multiplier (0.25, 0.5, 1.0) applied against
	// the global minimum salary when no fixed base salary is set.
	Rate       decimal.Decimal
	BaseSalary *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveBaseSalary resolves the compensation basis: a fixed base salary
// always takes precedence over the rate-derived figure.
func (e Employee) EffectiveBaseSalary(minSalary decimal.Decimal) decimal.Decimal {
	if e.BaseSalary != nil && e.BaseSalary.IsPositive() {
		return *e.BaseSalary
	}
	return e.Rate.Mul(minSalary)
}

// ActiveOn reports whether the employee had not been terminated before the
// given date. The termination date itself still counts as a working day.
func (e Employee) ActiveOn(date time.Time) bool {
	if e.TerminationDate == nil {
		return true
	}
	return !date.After(*e.TerminationDate)
}
