package employee

import (
	"time"

	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmpID                string           `json:"emp_id"`
	FullName             string           `json:"full_name"`
	Email                *string          `json:"email,omitempty"`
	Phone                *string          `json:"phone,omitempty"`
	JoiningDate          *string          `json:"joining_date,omitempty"`
	Designation          *string          `json:"designation,omitempty"`
	Department           *string          `json:"department,omitempty"`
	ManagerID            *string          `json:"manager_id,omitempty"`
	MonthlyAccruedLeaves *decimal.Decimal `json:"monthly_accrued_leaves,omitempty"`
	LeaveBalance         *decimal.Decimal `json:"leave_balance,omitempty"`
	FlexibleHoursAccrued *decimal.Decimal `json:"flexible_hours_accrued,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "emp_id",
			Message: "emp_id is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.MonthlyAccruedLeaves != nil && r.MonthlyAccruedLeaves.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_accrued_leaves",
			Message: "monthly_accrued_leaves must not be negative",
		})
	}
	if r.LeaveBalance != nil && r.LeaveBalance.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must not be negative",
		})
	}
	if r.FlexibleHoursAccrued != nil && r.FlexibleHoursAccrued.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "flexible_hours_accrued",
			Message: "flexible_hours_accrued must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                   string          `json:"id"`
	EmpID                string          `json:"emp_id"`
	FullName             string          `json:"full_name"`
	Email                *string         `json:"email,omitempty"`
	Phone                *string         `json:"phone,omitempty"`
	JoiningDate          time.Time       `json:"joining_date"`
	Designation          *string         `json:"designation,omitempty"`
	Department           *string         `json:"department,omitempty"`
	MonthlyAccruedLeaves decimal.Decimal `json:"monthly_accrued_leaves"`
	LeaveBalance         decimal.Decimal `json:"leave_balance"`
	FlexibleHoursAccrued decimal.Decimal `json:"flexible_hours_accrued"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		EmpID:                e.EmpID,
		FullName:             e.FullName,
		Email:                e.Email,
		Phone:                e.Phone,
		JoiningDate:          e.JoiningDate,
		Designation:          e.Designation,
		Department:           e.Department,
		MonthlyAccruedLeaves: e.MonthlyAccruedLeaves,
		LeaveBalance:         e.LeaveBalance,
		FlexibleHoursAccrued: e.FlexibleHoursAccrued,
	}
}
