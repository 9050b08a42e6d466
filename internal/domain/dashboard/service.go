package dashboard

import (
	"context"
	"time"
)

// DashboardService aggregates per-employee daily status for a given day.
// The instant is always threaded in by the caller so the aggregation is
// deterministic under test.
type DashboardService interface {
	// TodayStatus resolves every active employee's status for the calendar
	// day containing now.
	TodayStatus(ctx context.Context, now time.Time) ([]EmployeeDayStatus, error)

	// Overview combines the per-employee statuses with the currently
	// active shift and summary counts.
	Overview(ctx context.Context, now time.Time) (DashboardResponse, error)
}
