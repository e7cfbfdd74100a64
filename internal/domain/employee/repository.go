package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmpID(ctx context.Context, empID string) (Employee, error)
	ExistsByEmpID(ctx context.Context, empID string) (bool, error)
	List(ctx context.Context, limit int) ([]Employee, error)

	// GetByIDForUpdate loads the employee and takes a row-level lock for the
	// remainder of the surrounding transaction. Callers must be inside a
	// unit of work; concurrent balance mutations against the same employee
	// serialize on this lock.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// UpdateBalances persists new leave and flexible-hour balances.
	UpdateBalances(ctx context.Context, id string, leaveBalance, flexibleHours decimal.Decimal) error

	// AppendAccrualEntry appends to the employee's accrual audit log. Appends
	// join the same transaction as the balance change they document.
	AppendAccrualEntry(ctx context.Context, id string, entry AccrualEntry) error
	GetAccrualHistory(ctx context.Context, id string) ([]AccrualEntry, error)
}
