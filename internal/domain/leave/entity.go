package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

type Leave struct {
	ID         string
	EmployeeID string // storage identity of the employee, not the business empId
	Type       LeaveType
	StartDate  time.Time // inclusive, UTC calendar day
	EndDate    time.Time // inclusive, UTC calendar day
	HalfDay    bool
	Hours      decimal.Decimal // optional flexible-hour debit, independent of day cost
	Status     LeaveStatus
	Reason     string
	ResolvedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LeaveType string

const (
	LeaveTypePaid    LeaveType = "paid"
	LeaveTypeSick    LeaveType = "sick"
	LeaveTypeUnpaid  LeaveType = "unpaid"
	LeaveTypeHalfDay LeaveType = "half-day"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid, LeaveTypeHalfDay:
		return true
	}
	return false
}

// DebitsBalance reports whether approving a leave of this type debits the
// employee's leave balance.
func (t LeaveType) DebitsBalance() bool {
	return t == LeaveTypePaid || t == LeaveTypeSick
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

func (s LeaveStatus) Valid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected:
		return true
	}
	return false
}
