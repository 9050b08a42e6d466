package dashboard

import (
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dashboard"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

// 2026-03-10 is a Tuesday.
var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func approvedLeave(empID string, start, end time.Time, reason string) leave.Leave {
	return leave.Leave{
		EmployeeID: empID,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Status:     leave.StatusApproved,
	}
}

func TestResolveDayStatus_WeeklyOffWinsOverEverything(t *testing.T) {
	emp := employee.Employee{ID: "e1", WeeklyOff: []string{"tuesday"}}
	leaves := []leave.Leave{approvedLeave("e1", tuesday, tuesday, "vacation")}
	att := &attendance.Attendance{EmployeeID: "e1", Status: attendance.StatusAbsent}

	status, reason := ResolveDayStatus(emp, tuesday, leaves, att)

	assert.Equal(t, dashboard.StatusWeeklyOff, status)
	assert.Empty(t, reason)
}

func TestResolveDayStatus_WeekdayMatchIsCaseSensitive(t *testing.T) {
	emp := employee.Employee{ID: "e1", WeeklyOff: []string{"Tuesday"}}

	status, _ := ResolveDayStatus(emp, tuesday, nil, nil)

	assert.Equal(t, dashboard.StatusPresent, status)
}

func TestResolveDayStatus_ApprovedLeaveBeatsAttendance(t *testing.T) {
	emp := employee.Employee{ID: "e1"}
	leaves := []leave.Leave{approvedLeave("e1", tuesday, tuesday, "sick day")}
	att := &attendance.Attendance{EmployeeID: "e1", Status: attendance.StatusPresent}

	status, reason := ResolveDayStatus(emp, tuesday, leaves, att)

	assert.Equal(t, dashboard.StatusOnLeave, status)
	assert.Equal(t, "sick day", reason)
}

func TestResolveDayStatus_EarliestLeaveSuppliesReason(t *testing.T) {
	emp := employee.Employee{ID: "e1"}
	leaves := []leave.Leave{
		approvedLeave("e1", tuesday, tuesday, "later"),
		approvedLeave("e1", tuesday.AddDate(0, 0, -2), tuesday, "earlier"),
	}

	status, reason := ResolveDayStatus(emp, tuesday, leaves, nil)

	assert.Equal(t, dashboard.StatusOnLeave, status)
	assert.Equal(t, "earlier", reason)
}

func TestResolveDayStatus_PendingLeaveIgnored(t *testing.T) {
	emp := employee.Employee{ID: "e1"}
	pending := approvedLeave("e1", tuesday, tuesday, "pending")
	pending.Status = leave.StatusPending

	status, _ := ResolveDayStatus(emp, tuesday, []leave.Leave{pending}, nil)

	assert.Equal(t, dashboard.StatusPresent, status)
}

func TestResolveDayStatus_OtherEmployeesLeaveIgnored(t *testing.T) {
	emp := employee.Employee{ID: "e1"}
	leaves := []leave.Leave{approvedLeave("e2", tuesday, tuesday, "not mine")}

	status, _ := ResolveDayStatus(emp, tuesday, leaves, nil)

	assert.Equal(t, dashboard.StatusPresent, status)
}

func TestResolveDayStatus_AttendanceStatusVerbatim(t *testing.T) {
	emp := employee.Employee{ID: "e1"}

	for _, st := range []attendance.AttendanceStatus{
		attendance.StatusPresent,
		attendance.StatusAbsent,
		attendance.StatusHalfDay,
		attendance.StatusOnLeave,
	} {
		att := &attendance.Attendance{EmployeeID: "e1", Status: st}
		status, _ := ResolveDayStatus(emp, tuesday, nil, att)
		assert.Equal(t, dashboard.DayStatus(st), status)
	}
}

func TestResolveDayStatus_DefaultsToPresent(t *testing.T) {
	emp := employee.Employee{ID: "e1"}

	status, reason := ResolveDayStatus(emp, tuesday, nil, nil)

	assert.Equal(t, dashboard.StatusPresent, status)
	assert.Empty(t, reason)
}

func TestStatusDisplay(t *testing.T) {
	tests := []struct {
		status    dashboard.DayStatus
		wantColor string
		wantText  string
	}{
		{dashboard.StatusWeeklyOff, "gray", "Weekly Off"},
		{dashboard.StatusOnLeave, "red", "On Leave"},
		{dashboard.StatusPresent, "green", "Present"},
		{dashboard.StatusHalfDay, "orange", "Half Day"},
		{dashboard.StatusAbsent, "orange", "Half Day"},
	}

	for _, tt := range tests {
		color, text := StatusDisplay(tt.status)
		assert.Equal(t, tt.wantColor, color, string(tt.status))
		assert.Equal(t, tt.wantText, text, string(tt.status))
	}
}
