package employee

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrcore/leave-backend-go/internal/domain/employee"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	accruals  map[string][]employee.AccrualEntry
	listLimit int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		accruals:  make(map[string][]employee.AccrualEntry),
	}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = uuid.NewString()
	r.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.EmpID == empID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	_, err := r.GetByEmpID(ctx, empID)
	return err == nil, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, limit int) ([]employee.Employee, error) {
	r.listLimit = limit
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeEmployeeRepo) UpdateBalances(ctx context.Context, id string, leaveBalance, flexibleHours decimal.Decimal) error {
	e, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.LeaveBalance = leaveBalance
	e.FlexibleHoursAccrued = flexibleHours
	r.employees[id] = e
	return nil
}

func (r *fakeEmployeeRepo) AppendAccrualEntry(ctx context.Context, id string, entry employee.AccrualEntry) error {
	r.accruals[id] = append(r.accruals[id], entry)
	return nil
}

func (r *fakeEmployeeRepo) GetAccrualHistory(ctx context.Context, id string) ([]employee.AccrualEntry, error) {
	return r.accruals[id], nil
}

func TestEmployeeService_Create_Defaults(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmpID:    "EMP-1",
		FullName: "Ada Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP-1", created.EmpID)
	assert.True(t, created.MonthlyAccruedLeaves.Equal(decimal.NewFromInt(1)))
	assert.True(t, created.LeaveBalance.IsZero())
	assert.True(t, created.FlexibleHoursAccrued.IsZero())
	assert.False(t, created.JoiningDate.IsZero())
}

func TestEmployeeService_Create_ExplicitValues(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	joining := "2024-02-01"
	monthly := decimal.NewFromFloat(1.5)
	balance := decimal.NewFromInt(4)
	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		EmpID:                "EMP-1",
		FullName:             "Ada Lovelace",
		JoiningDate:          &joining,
		MonthlyAccruedLeaves: &monthly,
		LeaveBalance:         &balance,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), created.JoiningDate)
	assert.True(t, created.MonthlyAccruedLeaves.Equal(monthly))
	assert.True(t, created.LeaveBalance.Equal(balance))
}

func TestEmployeeService_Create_DuplicateEmpID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo())

	req := employee.CreateEmployeeRequest{EmpID: "EMP-1", FullName: "Ada Lovelace"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmpIDExists)
}

func TestEmployeeService_List_ClampsLimit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	_, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.listLimit)

	_, err = svc.List(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, 100, repo.listLimit)

	_, err = svc.List(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.listLimit)
}

func TestEmployeeService_GetAccrualHistory(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{EmpID: "EMP-1", FullName: "Ada Lovelace"})
	require.NoError(t, err)

	entry := employee.AccrualEntry{
		Date:        time.Now().UTC(),
		AddedLeaves: decimal.NewFromInt(1),
		Note:        "Monthly accrual",
	}
	require.NoError(t, repo.AppendAccrualEntry(ctx, created.ID, entry))

	history, err := svc.GetAccrualHistory(ctx, "EMP-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Monthly accrual", history[0].Note)

	_, err = svc.GetAccrualHistory(ctx, "NOPE")
	assert.Error(t, err)
}
