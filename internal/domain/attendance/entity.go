package attendance

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusHalfDay AttendanceStatus = "half_day"
	StatusOnLeave AttendanceStatus = "on_leave"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusOnLeave),
}

// Attendance is the single mutable daily record per (employee, date). Date
// is a calendar day normalized to midnight UTC; the storage layer enforces
// uniqueness on the pair and upserts replace fields instead of erroring.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Shift      string // shift code assigned at time of marking
	Status     AttendanceStatus
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours float64
	Notes      string
	MarkedBy   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Day truncates t to its calendar day. Two instants on the same day always
// map to the same attendance record.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
