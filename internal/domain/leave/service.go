package leave

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
)

// LeaveService defines business logic for leave requests. Operations that
// depend on who is calling take the Actor explicitly.
type LeaveService interface {
	// Apply files a new pending leave for the acting employee.
	Apply(ctx context.Context, actor identity.Actor, req ApplyLeaveRequest) (LeaveResponse, error)

	Get(ctx context.Context, actor identity.Actor, id string) (LeaveResponse, error)

	// List returns every leave for admins and the actor's own leaves
	// otherwise, newest first.
	List(ctx context.Context, actor identity.Actor) ([]LeaveResponse, error)

	// Update edits a leave. Owners may edit their pending leaves; only
	// admins may set status, and only pending leaves transition, exactly
	// once, to approved or rejected.
	Update(ctx context.Context, actor identity.Actor, id string, req UpdateLeaveRequest) (LeaveResponse, error)

	// Delete removes a leave: owners while pending, admins always.
	Delete(ctx context.Context, actor identity.Actor, id string) error

	// TodayLeaves returns approved leaves overlapping the given day.
	TodayLeaves(ctx context.Context, day time.Time) ([]LeaveResponse, error)

	ListByStatus(ctx context.Context, status LeaveStatus) ([]LeaveResponse, error)

	// CreateEmergency files a pre-approved emergency leave on behalf of an
	// employee. Admin only.
	CreateEmergency(ctx context.Context, actor identity.Actor, req EmergencyLeaveRequest) (LeaveResponse, error)

	// CalendarIndex expands the leaves overlapping [rangeStart, rangeEnd]
	// into a per-day index. Non-admin actors see their own leaves only.
	CalendarIndex(ctx context.Context, actor identity.Actor, rangeStart, rangeEnd time.Time) (map[string][]IndexedLeave, error)
}
