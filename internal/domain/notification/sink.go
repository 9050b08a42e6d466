package notification

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
)

// Sink receives fire-and-forget notifications from write-side services.
// Delivery is at-most-once with no acknowledgment; callers must never
// depend on it for correctness. Implementations must not block.
type Sink interface {
	NewLeave(l leave.Leave)
	LeaveStatusChanged(l leave.Leave)
	EmergencyLeaveAssigned(l leave.Leave)
	AttendanceMarked(att attendance.Attendance)
	EmployeeUpdated(emp employee.Employee)
}

// NopSink discards every event. Useful in tests and for wiring components
// that do not need a live transport.
type NopSink struct{}

func (NopSink) NewLeave(leave.Leave)               {}
func (NopSink) LeaveStatusChanged(leave.Leave)     {}
func (NopSink) EmergencyLeaveAssigned(leave.Leave) {}
func (NopSink) AttendanceMarked(attendance.Attendance) {}
func (NopSink) EmployeeUpdated(employee.Employee)  {}
