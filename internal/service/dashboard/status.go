package dashboard

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dashboard"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
)

// ResolveDayStatus collapses one employee's day into a single status tag.
// Precedence is strict: a weekly off wins over everything, then an approved
// leave covering the day, then whatever the attendance record says, and an
// employee nothing applies to defaults to present. When several approved
// leaves cover the same day the one with the earliest start date supplies
// the reason. Pending and rejected leaves never influence the outcome.
func ResolveDayStatus(emp employee.Employee, day time.Time, leaves []leave.Leave, att *attendance.Attendance) (dashboard.DayStatus, string) {
	if emp.HasWeeklyOff(employee.WeekdayName(day)) {
		return dashboard.StatusWeeklyOff, ""
	}

	var winner *leave.Leave
	for i := range leaves {
		l := &leaves[i]
		if l.EmployeeID != emp.ID || l.Status != leave.StatusApproved || !l.Covers(day) {
			continue
		}
		if winner == nil || l.StartDate.Before(winner.StartDate) {
			winner = l
		}
	}
	if winner != nil {
		return dashboard.StatusOnLeave, winner.Reason
	}

	if att != nil {
		return dashboard.DayStatus(att.Status), ""
	}

	return dashboard.StatusPresent, ""
}

// StatusDisplay maps a resolved status to its dashboard color and label.
// Anything outside the three named statuses renders as a half day.
func StatusDisplay(status dashboard.DayStatus) (color, text string) {
	switch status {
	case dashboard.StatusWeeklyOff:
		return "gray", "Weekly Off"
	case dashboard.StatusOnLeave:
		return "red", "On Leave"
	case dashboard.StatusPresent:
		return "green", "Present"
	default:
		return "orange", "Half Day"
	}
}
