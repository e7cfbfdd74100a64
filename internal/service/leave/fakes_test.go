package leave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/domain/holiday"
	"github.com/hrcore/leave-backend-go/internal/domain/leave"
)

// passthroughTx runs the unit of work directly, without a database.
func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeHolidayRepo struct {
	mu       sync.Mutex
	holidays map[string]holiday.Holiday // keyed by ID
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (r *fakeHolidayRepo) add(name string, date time.Time) holiday.Holiday {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := holiday.Holiday{
		ID:   uuid.NewString(),
		Name: name,
		Date: UTCDay(date),
	}
	r.holidays[h.ID] = h
	return h
}

func (r *fakeHolidayRepo) Create(ctx context.Context, newHoliday holiday.Holiday) (holiday.Holiday, error) {
	return r.add(newHoliday.Name, newHoliday.Date), nil
}

func (r *fakeHolidayRepo) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (r *fakeHolidayRepo) GetByDateRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r *fakeHolidayRepo) ExistsOnDate(ctx context.Context, date time.Time, excludeID *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.holidays {
		if excludeID != nil && h.ID == *excludeID {
			continue
		}
		if h.Date.Equal(UTCDay(date)) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHolidayRepo) Update(ctx context.Context, updated holiday.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.holidays[updated.ID]; !ok {
		return holiday.ErrHolidayNotFound
	}
	r.holidays[updated.ID] = updated
	return nil
}

func (r *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return nil
}

func (r *fakeHolidayRepo) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []holiday.Holiday
	for _, h := range r.holidays {
		out = append(out, h)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees map[string]employee.Employee // keyed by storage ID
	accruals  map[string][]employee.AccrualEntry
	failOn    map[string]error // storage ID -> error returned by GetByIDForUpdate
	lockHook  func()           // runs once inside GetByIDForUpdate, for interleaving tests
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]employee.Employee),
		accruals:  make(map[string][]employee.AccrualEntry),
		failOn:    make(map[string]error),
	}
}

func (r *fakeEmployeeRepo) add(empID string, balance, flexHours, monthly decimal.Decimal) employee.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := employee.Employee{
		ID:                   uuid.NewString(),
		EmpID:                empID,
		FullName:             "Employee " + empID,
		MonthlyAccruedLeaves: monthly,
		LeaveBalance:         balance,
		FlexibleHoursAccrued: flexHours,
	}
	r.employees[e.ID] = e
	return e
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return r.add(newEmployee.EmpID, newEmployee.LeaveBalance, newEmployee.FlexibleHoursAccrued, newEmployee.MonthlyAccruedLeaves), nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.employees {
		if e.EmpID == empID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	_, err := r.GetByEmpID(ctx, empID)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, limit int) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	if err, ok := r.failOn[id]; ok {
		r.mu.Unlock()
		return employee.Employee{}, err
	}
	hook := r.lockHook
	r.lockHook = nil
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
	return r.GetByID(ctx, id)
}

func (r *fakeEmployeeRepo) UpdateBalances(ctx context.Context, id string, leaveBalance, flexibleHours decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.accruals[id] = append(r.accruals[id], entry)
	return nil
}

func (r *fakeEmployeeRepo) GetAccrualHistory(ctx context.Context, id string) ([]employee.AccrualEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accruals[id], nil
}

type fakeLeaveRepo struct {
	mu     sync.Mutex
	leaves map[string]leave.Leave
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (r *fakeLeaveRepo) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	newLeave.ID = uuid.NewString()
	newLeave.CreatedAt = time.Now().UTC()
	r.leaves[newLeave.ID] = newLeave
	return newLeave, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lv, ok := r.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return lv, nil
}

func (r *fakeLeaveRepo) ResolvePending(ctx context.Context, id string, status leave.LeaveStatus, resolvedBy string, approvedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lv, ok := r.leaves[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	if lv.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveNotPending
	}
	lv.Status = status
	lv.ResolvedBy = &resolvedBy
	lv.ApprovedAt = approvedAt
	r.leaves[id] = lv
	return nil
}

func (r *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.Leave
	for _, lv := range r.leaves {
		if filter.EmployeeID != "" && lv.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && lv.Status != filter.Status {
			continue
		}
		if filter.FromDate != nil && lv.StartDate.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && lv.StartDate.After(*filter.ToDate) {
			continue
		}
		out = append(out, lv)
	}
	return out, nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("bad test date %q: %v", s, err))
	}
	return t
}
