package vacation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Only approved and completed requests count toward totals and
// the attendance calendar.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

func (s Status) CountsTowardTotals() bool {
	return s == StatusApproved || s == StatusCompleted
}

// Request is a vacation request together with its computed payment.
// PaymentAmount and AverageSalary are derived by the average-earnings
// calculation over [PeriodStart, PeriodEnd]; a zero payment may mean
// "unknown" and is open to manual correction.
type Request struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	DaysCount     int
	Status        Status
	PaymentAmount decimal.Decimal
	AverageSalary decimal.Decimal
	PeriodStart   time.Time
	PeriodEnd     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
