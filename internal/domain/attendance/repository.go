package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert writes the one record for (att.EmployeeID, att.Date). On
	// conflict it replaces status, shift, notes and marked_by in place and
	// leaves check_in/check_out/total_hours untouched unless set on att.
	// The storage uniqueness constraint on the pair is the only
	// serialization guarantee; concurrent upserts race last-writer-wins.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListForDay returns every attendance record for the calendar day.
	ListForDay(ctx context.Context, day time.Time) ([]Attendance, error)

	ListByEmployee(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]Attendance, error)
}
