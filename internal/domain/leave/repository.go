package leave

import (
	"context"
	"time"
)

// ListFilter narrows leave queries. Zero values mean "no filter". FromDate and
// ToDate bound the leave's start date, both inclusive.
type ListFilter struct {
	EmployeeID string
	Status     LeaveStatus
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
}

// LeaveRepository - interface for the leaves table
type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// ResolvePending moves a leave out of pending state. The transition is
	// guarded: it fails with ErrLeaveNotPending when the leave is no longer
	// pending, so of two concurrent resolutions only one can win.
	ResolvePending(ctx context.Context, id string, status LeaveStatus, resolvedBy string, approvedAt *time.Time) error
	List(ctx context.Context, filter ListFilter) ([]Leave, error)
}
