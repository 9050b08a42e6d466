package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)

	// List returns all leaves, newest first.
	List(ctx context.Context) ([]Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	ListByStatus(ctx context.Context, status LeaveStatus) ([]Leave, error)

	// ListOverlapping returns leaves whose [StartDate, EndDate] interval
	// intersects [rangeStart, rangeEnd]. A nil employeeID means all
	// employees; a nil status means any status.
	ListOverlapping(ctx context.Context, rangeStart, rangeEnd time.Time, employeeID *string, status *LeaveStatus) ([]Leave, error)

	Update(ctx context.Context, l Leave) (Leave, error)
	Delete(ctx context.Context, id string) error
}
