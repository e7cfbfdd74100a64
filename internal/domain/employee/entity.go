package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	EmpID       string // stable business identifier, distinct from the row ID
	FullName    string
	Email       *string
	Phone       *string
	JoiningDate time.Time
	Designation *string
	Department  *string
	ManagerID   *string

	// Leave balance fields. Balances are decimal days/hours and may be
	// fractional (e.g. 0.5); committed mutations never leave them negative.
	MonthlyAccruedLeaves decimal.Decimal
	LeaveBalance         decimal.Decimal
	FlexibleHoursAccrued decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccrualEntry is one record of the employee's append-only accrual audit log.
type AccrualEntry struct {
	Date               time.Time
	AddedLeaves        decimal.Decimal
	AddedFlexibleHours decimal.Decimal
	Note               string
}
