package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, emp_id, full_name, email, phone, joining_date, designation, department, manager_id,
	monthly_accrued_leaves, leave_balance, flexible_hours_accrued, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpID, &emp.FullName, &emp.Email, &emp.Phone, &emp.JoiningDate,
		&emp.Designation, &emp.Department, &emp.ManagerID,
		&emp.MonthlyAccruedLeaves, &emp.LeaveBalance, &emp.FlexibleHoursAccrued,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			id, emp_id, full_name, email, phone, joining_date, designation, department, manager_id,
			monthly_accrued_leaves, leave_balance, flexible_hours_accrued, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	newEmployee.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.EmpID, newEmployee.FullName, newEmployee.Email, newEmployee.Phone,
		newEmployee.JoiningDate, newEmployee.Designation, newEmployee.Department, newEmployee.ManagerID,
		newEmployee.MonthlyAccruedLeaves, newEmployee.LeaveBalance, newEmployee.FlexibleHoursAccrued,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return newEmployee, nil
}

func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByIDForUpdate takes a FOR UPDATE row lock. Must run inside a transaction
// carried by ctx; against the bare pool the lock would be released immediately.
func (e *employeeRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 FOR UPDATE`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (e *employeeRepositoryImpl) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE emp_id = $1)`, empID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (e *employeeRepositoryImpl) List(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY emp_id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (e *employeeRepositoryImpl) UpdateBalances(ctx context.Context, id string, leaveBalance, flexibleHours decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET leave_balance = $1, flexible_hours_accrued = $2, updated_at = NOW()
		WHERE id = $3
	`

	commandTag, err := q.Exec(ctx, query, leaveBalance, flexibleHours, id)
	if err != nil {
		return fmt.Errorf("failed to update balances for employee %s: %w", id, err)
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (e *employeeRepositoryImpl) AppendAccrualEntry(ctx context.Context, id string, entry employee.AccrualEntry) error {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employee_accruals (employee_id, accrued_at, added_leaves, added_flexible_hours, note)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, id, entry.Date, entry.AddedLeaves, entry.AddedFlexibleHours, entry.Note)
	if err != nil {
		return fmt.Errorf("failed to append accrual entry for employee %s: %w", id, err)
	}
	return nil
}

func (e *employeeRepositoryImpl) GetAccrualHistory(ctx context.Context, id string) ([]employee.AccrualEntry, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT accrued_at, added_leaves, added_flexible_hours, note
		FROM employee_accruals
		WHERE employee_id = $1
		ORDER BY accrued_at
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []employee.AccrualEntry
	for rows.Next() {
		var entry employee.AccrualEntry
		if err := rows.Scan(&entry.Date, &entry.AddedLeaves, &entry.AddedFlexibleHours, &entry.Note); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
