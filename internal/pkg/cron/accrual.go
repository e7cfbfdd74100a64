package cron

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrcore/leave-backend-go/internal/config"
	leavesvc "github.com/hrcore/leave-backend-go/internal/service/leave"
)

type AccrualJobs struct {
	accrualService *leavesvc.AccrualService
	cfg            config.LeaveConfig
}

func NewAccrualJobs(accrualService *leavesvc.AccrualService, cfg config.LeaveConfig) *AccrualJobs {
	return &AccrualJobs{
		accrualService: accrualService,
		cfg:            cfg,
	}
}

func (j *AccrualJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddMonthlyJob("monthly_leave_accrual", j.cfg.AccrualCheckInterval, j.cfg.Timezone, j.RunMonthlyAccrual)
}

// RunMonthlyAccrual credits every employee's leave balance and flexible
// hours for the month. The scheduler guarantees at most one firing per
// calendar month per process.
func (j *AccrualJobs) RunMonthlyAccrual(ctx context.Context) error {
	slog.Info("Cron: Starting monthly leave accrual job")

	result, err := j.accrualService.AccrueMonthlyForAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to run monthly accrual: %w", err)
	}

	slog.Info("Cron: Monthly leave accrual finished",
		"processed", result.Processed,
		"failed", result.Failed)
	return nil
}
