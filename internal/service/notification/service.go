package notification

import (
	"log/slog"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/sse"
)

// service fans domain events out over SSE. Admin dashboards listen on the
// shared admin stream; each employee listens on a stream named by their id.
// Publishing never blocks, so a slow client only loses its own events.
type service struct {
	hub    *sse.Hub
	logger *slog.Logger
}

func NewNotificationService(hub *sse.Hub, logger *slog.Logger) notification.Sink {
	return &service{hub: hub, logger: logger}
}

func (s *service) publish(streams []string, event string, data interface{}) {
	s.hub.PublishToMany(streams, sse.Event{Event: event, Data: data})
	s.logger.Debug("published event", "event", event, "streams", len(streams))
}

// NewLeave implements notification.Sink.
func (s *service) NewLeave(l leave.Leave) {
	s.publish([]string{sse.AdminStream}, "new-leave", map[string]interface{}{
		"leave_id":      l.ID,
		"employee_id":   l.EmployeeID,
		"employee_name": l.EmployeeName,
		"start_date":    l.StartDate.Format("2006-01-02"),
		"end_date":      l.EndDate.Format("2006-01-02"),
		"type":          string(l.Type),
		"reason":        l.Reason,
	})
}

// LeaveStatusChanged implements notification.Sink.
func (s *service) LeaveStatusChanged(l leave.Leave) {
	s.publish([]string{sse.AdminStream, l.EmployeeID}, "leave-status-changed", map[string]interface{}{
		"leave_id":    l.ID,
		"employee_id": l.EmployeeID,
		"status":      string(l.Status),
		"start_date":  l.StartDate.Format("2006-01-02"),
		"end_date":    l.EndDate.Format("2006-01-02"),
	})
}

// EmergencyLeaveAssigned implements notification.Sink.
func (s *service) EmergencyLeaveAssigned(l leave.Leave) {
	s.publish([]string{sse.AdminStream, l.EmployeeID}, "emergency-leave-assigned", map[string]interface{}{
		"leave_id":    l.ID,
		"employee_id": l.EmployeeID,
		"start_date":  l.StartDate.Format("2006-01-02"),
		"end_date":    l.EndDate.Format("2006-01-02"),
		"reason":      l.Reason,
	})
}

// AttendanceMarked implements notification.Sink.
func (s *service) AttendanceMarked(att attendance.Attendance) {
	s.publish([]string{sse.AdminStream, att.EmployeeID}, "attendance-marked", map[string]interface{}{
		"employee_id": att.EmployeeID,
		"date":        att.Date.Format("2006-01-02"),
		"status":      string(att.Status),
		"shift":       att.Shift,
	})
}

// EmployeeUpdated implements notification.Sink.
func (s *service) EmployeeUpdated(emp employee.Employee) {
	s.publish([]string{sse.AdminStream, emp.ID}, "employee-updated", map[string]interface{}{
		"employee_id": emp.ID,
		"shift":       emp.Shift,
		"status":      string(emp.Status),
	})
}
