package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dashboard"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
)

// StatusJobs refreshes the denormalized today_status column on employees
// from the daily status aggregation.
type StatusJobs struct {
	dashboardSvc dashboard.DashboardService
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

func NewStatusJobs(dashboardSvc dashboard.DashboardService, employeeRepo employee.EmployeeRepository, logger *slog.Logger) *StatusJobs {
	return &StatusJobs{
		dashboardSvc: dashboardSvc,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (j *StatusJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.Every(15*time.Minute, "refresh_today_status", j.RefreshTodayStatus)
}

// RefreshTodayStatus recomputes every active employee's resolved status for
// the current day and writes it back. The column is display-only; the
// aggregation endpoints always compute fresh.
func (j *StatusJobs) RefreshTodayStatus(ctx context.Context) error {
	statuses, err := j.dashboardSvc.TodayStatus(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to resolve today statuses: %w", err)
	}

	updated := 0
	for _, st := range statuses {
		if err := j.employeeRepo.UpdateTodayStatus(ctx, st.EmployeeID, st.TodayStatus); err != nil {
			j.logger.Error("failed to update today status",
				"employee_id", st.EmployeeID,
				"error", err)
			continue
		}
		updated++
	}

	j.logger.Info("refreshed today statuses", "count", updated)
	return nil
}
