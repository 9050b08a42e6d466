package shift

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
)

// Codes is the closed set of shift catalog codes.
var Codes = []string{"shift1", "shift2", "shift3", "shift4"}

type Shift struct {
	ID          string
	Code        string // unique, one of Codes
	Name        string
	StartTime   string // HH:MM, 24-hour
	EndTime     string // HH:MM; earlier than StartTime for overnight shifts
	Description string
	Color       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Window builds the shift's wall-clock window from its stored HH:MM pair.
// Recomputed per query, never cached.
func (s Shift) Window() (clock.Window, error) {
	return clock.ParseWindow(s.StartTime, s.EndTime)
}

// DefaultShifts is the seed catalog: morning, evening (overnight into the
// next day) and night shifts.
func DefaultShifts() []Shift {
	return []Shift{
		{
			Name:        "Shift 1",
			Code:        "shift1",
			StartTime:   "09:00",
			EndTime:     "17:00",
			Description: "Morning Shift (9 AM to 5 PM)",
			Color:       "#3b82f6",
			IsActive:    true,
		},
		{
			Name:        "Shift 2",
			Code:        "shift2",
			StartTime:   "17:00",
			EndTime:     "01:00",
			Description: "Evening Shift (5 PM to 1 AM)",
			Color:       "#f59e0b",
			IsActive:    true,
		},
		{
			Name:        "Shift 3",
			Code:        "shift3",
			StartTime:   "01:00",
			EndTime:     "09:00",
			Description: "Night Shift (1 AM to 9 AM)",
			Color:       "#64748b",
			IsActive:    true,
		},
	}
}
