package dashboard

// DayStatus is the single resolved status tag for one employee on one day.
type DayStatus string

const (
	StatusPresent   DayStatus = "present"
	StatusAbsent    DayStatus = "absent"
	StatusHalfDay   DayStatus = "half_day"
	StatusOnLeave   DayStatus = "on_leave"
	StatusWeeklyOff DayStatus = "weekly_off"
)

// EmployeeDayStatus is one employee's resolved status plus the display
// metadata the dashboard renders.
type EmployeeDayStatus struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Shift        string `json:"shift"`
	DisplayTime  string `json:"display_time"`
	TodayStatus  string `json:"today_status"`
	StatusColor  string `json:"status_color"`
	StatusText   string `json:"status_text"`
	LeaveReason  string `json:"leave_reason,omitempty"`
}

// CurrentShiftInfo describes the shift window containing "now", if any.
type CurrentShiftInfo struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	StartTime   string `json:"start_time"` // 12-hour display
	EndTime     string `json:"end_time"`   // 12-hour display
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

type DashboardResponse struct {
	Date           string              `json:"date"`
	Employees      []EmployeeDayStatus `json:"employees"`
	CurrentShift   *CurrentShiftInfo   `json:"current_shift,omitempty"`
	PresentCount   int                 `json:"present_count"`
	AbsentCount    int                 `json:"absent_count"`
	OnLeaveCount   int                 `json:"on_leave_count"`
	WeeklyOffCount int                 `json:"weekly_off_count"`
}
