package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	exists, err := s.employeeRepo.ExistsByEmpID(ctx, req.EmpID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if exists {
		return employee.Employee{}, employee.ErrEmpIDExists
	}

	joiningDate := time.Now().UTC()
	if req.JoiningDate != nil {
		joiningDate, _ = validator.IsValidDate(*req.JoiningDate)
	}

	monthlyAccruedLeaves := decimal.NewFromInt(1)
	if req.MonthlyAccruedLeaves != nil {
		monthlyAccruedLeaves = *req.MonthlyAccruedLeaves
	}
	leaveBalance := decimal.Zero
	if req.LeaveBalance != nil {
		leaveBalance = *req.LeaveBalance
	}
	flexibleHours := decimal.Zero
	if req.FlexibleHoursAccrued != nil {
		flexibleHours = *req.FlexibleHoursAccrued
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmpID:                req.EmpID,
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		JoiningDate:          joiningDate,
		Designation:          req.Designation,
		Department:           req.Department,
		ManagerID:            req.ManagerID,
		MonthlyAccruedLeaves: monthlyAccruedLeaves,
		LeaveBalance:         leaveBalance,
		FlexibleHoursAccrued: flexibleHours,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (s *EmployeeService) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by empId: %w", err)
	}
	return emp, nil
}

func (s *EmployeeService) List(ctx context.Context, limit int) ([]employee.Employee, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	employees, err := s.employeeRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeService) GetAccrualHistory(ctx context.Context, empID string) ([]employee.AccrualEntry, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by empId: %w", err)
	}
	history, err := s.employeeRepo.GetAccrualHistory(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accrual history: %w", err)
	}
	return history, nil
}
