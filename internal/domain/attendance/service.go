package attendance

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
)

// AttendanceService defines business logic for daily attendance marking.
type AttendanceService interface {
	// Mark upserts the attendance record for (employeeID, requested day).
	// Exactly one record exists per pair afterward. Fails with
	// employee.ErrEmployeeNotFound when the id does not resolve. On
	// success an AttendanceMarked notification is emitted fire-and-forget.
	Mark(ctx context.Context, actor identity.Actor, employeeID string, req MarkAttendanceRequest) (AttendanceResponse, error)

	// ListForDay returns the day's attendance records.
	ListForDay(ctx context.Context, day time.Time) ([]AttendanceResponse, error)

	// History returns one employee's records inside [rangeStart, rangeEnd].
	History(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]AttendanceResponse, error)
}
