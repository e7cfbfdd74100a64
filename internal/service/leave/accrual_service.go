package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hrcore/leave-backend-go/internal/config"
	"github.com/hrcore/leave-backend-go/internal/domain/employee"
	"github.com/hrcore/leave-backend-go/internal/pkg/database"
	"github.com/hrcore/leave-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const accrualNote = "Monthly accrual"

// accrualWorkers bounds the fan-out so a large employee table does not
// exhaust the connection pool.
const accrualWorkers = 8

// AccrualService runs the monthly accrual pass. Each invocation is a full,
// independent pass over all employees: there is no period tracking, so running
// it twice in the same month accrues twice. Callers own the schedule.
type AccrualService struct {
	employeeRepo employee.EmployeeRepository
	cfg          config.LeaveConfig
	inTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAccrualService(db *database.DB, employeeRepo employee.EmployeeRepository, cfg config.LeaveConfig) *AccrualService {
	return &AccrualService{
		employeeRepo: employeeRepo,
		cfg:          cfg,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// AccrualResult aggregates one accrual pass.
type AccrualResult struct {
	Processed int
	Failed    int
}

// AccrueMonthlyForAll grants every employee their monthly leave accrual
// (capped at the carry-forward maximum) plus the fixed flexible-hours grant,
// and appends one audit entry per employee. Employees are updated
// independently and concurrently; one employee's failure is logged, excluded
// from the processed count, and never stops the batch.
func (s *AccrualService) AccrueMonthlyForAll(ctx context.Context) (AccrualResult, error) {
	employees, err := s.employeeRepo.List(ctx, 0)
	if err != nil {
		return AccrualResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := time.Now().UTC()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result AccrualResult
	)
	sem := make(chan struct{}, accrualWorkers)

	for _, emp := range employees {
		wg.Add(1)
		sem <- struct{}{}
		go func(emp employee.Employee) {
			defer wg.Done()
			defer func() { <-sem }()

			err := s.accrueOne(ctx, emp.ID, now)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				slog.Error("Accrual failed for employee", "emp_id", emp.EmpID, "error", err)
				return
			}
			result.Processed++
		}(emp)
	}
	wg.Wait()

	slog.Info("Monthly accrual finished", "processed", result.Processed, "failed", result.Failed)
	return result, nil
}

// accrueOne applies the accrual to a single employee inside its own
// transaction, so the balance change and its audit entry commit together and
// a concurrent leave resolution for the same employee serializes on the row
// lock.
func (s *AccrualService) accrueOne(ctx context.Context, employeeID string, now time.Time) error {
	return s.inTx(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByIDForUpdate(txCtx, employeeID)
		if err != nil {
			return fmt.Errorf("failed to lock employee row: %w", err)
		}

		addedLeaves := emp.MonthlyAccruedLeaves
		if !addedLeaves.IsPositive() {
			addedLeaves = decimal.NewFromInt(1)
		}

		leaveBalance := emp.LeaveBalance.Add(addedLeaves).Round(2)
		if leaveBalance.GreaterThan(s.cfg.MaxCarryForward) {
			leaveBalance = s.cfg.MaxCarryForward
		}

		flexibleHours := emp.FlexibleHoursAccrued.Add(s.cfg.MonthlyFlexibleHours).Round(2)

		if err := s.employeeRepo.UpdateBalances(txCtx, emp.ID, leaveBalance, flexibleHours); err != nil {
			return fmt.Errorf("failed to update employee balances: %w", err)
		}

		entry := employee.AccrualEntry{
			Date:               now,
			AddedLeaves:        addedLeaves,
			AddedFlexibleHours: s.cfg.MonthlyFlexibleHours,
			Note:               accrualNote,
		}
		if err := s.employeeRepo.AppendAccrualEntry(txCtx, emp.ID, entry); err != nil {
			return fmt.Errorf("failed to append accrual entry: %w", err)
		}

		slog.Debug("Accrued for employee",
			"emp_id", emp.EmpID,
			"added_leaves", addedLeaves,
			"added_flexible_hours", s.cfg.MonthlyFlexibleHours,
			"new_balance", leaveBalance)
		return nil
	})
}
