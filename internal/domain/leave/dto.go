package leave

import (
	"time"

	"github.com/hrcore/leave-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ApplyLeaveRequest struct {
	EmployeeID string          `json:"employee_id"` // business empId
	Type       string          `json:"type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	HalfDay    bool            `json:"half_day"`
	Hours      decimal.Decimal `json:"hours"`
	Reason     string          `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !LeaveType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of paid, sick, unpaid, half-day",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed start and end dates. Validate must have passed.
func (r *ApplyLeaveRequest) Dates() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

type ResolveLeaveRequest struct {
	LeaveID string `json:"leave_id"`
	Approve bool   `json:"approve"`
}

func (r *ResolveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_id",
			Message: "leave_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Type       LeaveType       `json:"type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	HalfDay    bool            `json:"half_day"`
	Hours      decimal.Decimal `json:"hours"`
	Status     LeaveStatus     `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	ResolvedBy *string         `json:"resolved_by,omitempty"`
	ApprovedAt *time.Time      `json:"approved_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		Type:       l.Type,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		HalfDay:    l.HalfDay,
		Hours:      l.Hours,
		Status:     l.Status,
		Reason:     l.Reason,
		ResolvedBy: l.ResolvedBy,
		ApprovedAt: l.ApprovedAt,
		CreatedAt:  l.CreatedAt,
	}
}
