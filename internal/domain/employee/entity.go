package employee

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
)

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "active"
	StatusInactive EmployeeStatus = "inactive"
)

// ShiftFlexible marks an employee without a fixed shift assignment.
const ShiftFlexible = "flexible"

// WeekdayNames is the canonical lowercase weekday vocabulary, indexed by
// time.Weekday (Sunday = 0). Weekly-off comparisons are case-sensitive
// against exactly these values.
var WeekdayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName returns the canonical name for the day t falls on.
func WeekdayName(t time.Time) string {
	return WeekdayNames[int(t.Weekday())]
}

type Employee struct {
	ID           string
	EmployeeCode string // EMP#### display identifier
	Name         string
	Email        string
	PasswordHash string
	Phone        string

	// Shift is a catalog shift code or ShiftFlexible. CustomStart/CustomEnd
	// hold the employee's override window and double as the display fallback
	// for flexible employees.
	Shift       string
	CustomStart string // HH:MM
	CustomEnd   string // HH:MM

	WeeklyOff []string // subset of WeekdayNames, no duplicates

	Role        identity.Role
	Status      EmployeeStatus
	TodayStatus string // denormalized, refreshed by the status cron

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) IsFlexible() bool {
	return e.Shift == ShiftFlexible
}

// HasWeeklyOff reports whether the named weekday is one of the employee's
// fixed off days.
func (e Employee) HasWeeklyOff(weekday string) bool {
	for _, day := range e.WeeklyOff {
		if day == weekday {
			return true
		}
	}
	return false
}

// CustomWindow parses the employee's override timing.
func (e Employee) CustomWindow() (clock.Window, error) {
	return clock.ParseWindow(e.CustomStart, e.CustomEnd)
}
