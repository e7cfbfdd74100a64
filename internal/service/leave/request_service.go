package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/domain/leave"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/hrcore/leave-backend-go/internal/repository/postgresql"
)

type RequestService struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	calendar     *Calendar
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewRequestService(db *database.DB, leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, calendar *Calendar) *RequestService {
	return &RequestService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		calendar:     calendar,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Apply validates a leave request and records it in pending state. Balances
// are not touched here; the flexible-hours check is point-in-time only and a
// later approval re-validates against the balance current at that moment.
func (s *RequestService) Apply(ctx context.Context, req leave.ApplyLeaveRequest, appliedBy string) (leave.Leave, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to get employee by empId: %w", err)
	}

	startDate, endDate := req.Dates()
	leaveType := leave.LeaveType(req.Type)

	days, err := s.calendar.ResolveDays(ctx, startDate, endDate, req.HalfDay)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to resolve leave duration: %w", err)
	}

	if leaveType.DebitsBalance() && !days.IsPositive() {
		return leave.Leave{}, leave.ErrInvalidDuration
	}

	if req.Hours.IsPositive() && req.Hours.GreaterThan(emp.FlexibleHoursAccrued) {
		return leave.Leave{}, leave.ErrInsufficientFlexibleHours
	}

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		Type:       leaveType,
		StartDate:  UTCDay(startDate),
		EndDate:    UTCDay(endDate),
		HalfDay:    req.HalfDay,
		Hours:      req.Hours,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	slog.Info("Leave applied", "leave_id", created.ID, "emp_id", emp.EmpID, "applied_by", appliedBy)
	return created, nil
}

// Resolve approves or rejects a pending leave as one atomic unit of work.
// Approval recomputes the day cost at resolution time, so holiday changes made
// after application are honored, and debits the employee's balances. The
// employee row is locked for the duration of the transaction, and the status
// transition itself is guarded in the repository: of two concurrent
// resolutions of the same leave the loser gets ErrLeaveNotPending instead of
// resolving it twice. Any failure rolls the whole unit back.
func (s *RequestService) Resolve(ctx context.Context, leaveID string, approve bool, resolvedBy string) (leave.Leave, error) {
	var resolved leave.Leave

	err := s.inTx(ctx, func(txCtx context.Context) error {
		lv, err := s.leaveRepo.GetByID(txCtx, leaveID)
		if err != nil {
			return fmt.Errorf("failed to get leave by ID: %w", err)
		}

		if lv.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveNotPending
		}

		if !approve {
			if err := s.leaveRepo.ResolvePending(txCtx, lv.ID, leave.LeaveStatusRejected, resolvedBy, nil); err != nil {
				return err
			}
			lv.Status = leave.LeaveStatusRejected
			lv.ResolvedBy = &resolvedBy
			resolved = lv
			return nil
		}

		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, lv.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		days, err := s.calendar.ResolveDays(txCtx, lv.StartDate, lv.EndDate, lv.HalfDay)
		if err != nil {
			return fmt.Errorf("failed to resolve leave duration: %w", err)
		}

		leaveBalance := emp.LeaveBalance
		flexibleHours := emp.FlexibleHoursAccrued

		if lv.Type.DebitsBalance() {
			if leaveBalance.LessThan(days) {
				return leave.ErrInsufficientLeaveBalance
			}
			leaveBalance = leaveBalance.Sub(days).Round(2)
		}

		if lv.Hours.IsPositive() {
			if flexibleHours.LessThan(lv.Hours) {
				return leave.ErrInsufficientFlexibleHours
			}
			flexibleHours = flexibleHours.Sub(lv.Hours).Round(2)
		}

		// Claim the leave before debiting. If another resolution committed
		// between our read and here, the guarded transition fails and no
		// balance is touched.
		approvedAt := time.Now().UTC()
		if err := s.leaveRepo.ResolvePending(txCtx, lv.ID, leave.LeaveStatusApproved, resolvedBy, &approvedAt); err != nil {
			return err
		}

		if err := s.employeeRepo.UpdateBalances(txCtx, emp.ID, leaveBalance, flexibleHours); err != nil {
			return fmt.Errorf("failed to update employee balances: %w", err)
		}

		lv.Status = leave.LeaveStatusApproved
		lv.ResolvedBy = &resolvedBy
		lv.ApprovedAt = &approvedAt
		resolved = lv
		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}

	if resolved.Status == leave.LeaveStatusApproved {
		slog.Info("Leave approved", "leave_id", resolved.ID, "resolved_by", resolvedBy)
	} else {
		slog.Info("Leave rejected", "leave_id", resolved.ID, "resolved_by", resolvedBy)
	}
	return resolved, nil
}

// List returns leaves matching the filter. The filter's EmployeeID is the
// business empId; it is translated to the storage identity first.
func (s *RequestService) List(ctx context.Context, empID string, status leave.LeaveStatus, fromDate, toDate *time.Time, limit int) ([]leave.Leave, error) {
	filter := leave.ListFilter{
		Status:   status,
		FromDate: fromDate,
		ToDate:   toDate,
		Limit:    limit,
	}

	if empID != "" {
		emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employee by empId: %w", err)
		}
		filter.EmployeeID = emp.ID
	}

	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leaves, nil
}
