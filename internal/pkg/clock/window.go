package clock

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidTimeRange indicates a window built from minute values outside [0, 1439].
var ErrInvalidTimeRange = errors.New("time must be within 0 and 1439 minutes of the day")

// Window is a wall-clock interval expressed in minutes since midnight.
// End < Start is legal and encodes a shift that wraps past midnight
// (e.g. 17:00-01:00). A Window is immutable once constructed.
type Window struct {
	Start int
	End   int
}

// NewWindow validates the minute bounds and returns a Window.
// An overnight pair (end < start) is accepted, not rejected.
func NewWindow(startMinutes, endMinutes int) (Window, error) {
	if startMinutes < 0 || startMinutes >= MinutesPerDay {
		return Window{}, fmt.Errorf("start %d: %w", startMinutes, ErrInvalidTimeRange)
	}
	if endMinutes < 0 || endMinutes >= MinutesPerDay {
		return Window{}, fmt.Errorf("end %d: %w", endMinutes, ErrInvalidTimeRange)
	}
	return Window{Start: startMinutes, End: endMinutes}, nil
}

// ParseWindow builds a Window from two 24-hour "HH:MM" strings.
func ParseWindow(startTime, endTime string) (Window, error) {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(start, end)
}

// ParseMinutes converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseMinutes(t string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(t, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", t, ErrInvalidTimeRange)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: %w", t, ErrInvalidTimeRange)
	}
	return hour*60 + minute, nil
}

// MinuteOfDay returns t's wall-clock position in minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsOvernight reports whether the window wraps past midnight.
func (w Window) IsOvernight() bool {
	return w.End < w.Start
}

// Contains reports whether the given minute of the day falls inside the
// window. The start edge is inclusive and the end edge exclusive. For an
// overnight window the interval spans midnight into the next day, so the
// instant matches when it is at or after the start or before the end.
func (w Window) Contains(minuteOfDay int) bool {
	if w.IsOvernight() {
		return minuteOfDay >= w.Start || minuteOfDay < w.End
	}
	return minuteOfDay >= w.Start && minuteOfDay < w.End
}

// Duration returns the window length in minutes. Overnight windows extend
// into the next day, so 17:00-01:00 is 480 minutes. A start == end window
// is degenerate with duration 0.
func (w Window) Duration() int {
	if w.IsOvernight() {
		return w.End - w.Start + MinutesPerDay
	}
	return w.End - w.Start
}

// Display renders the window as "h:mm AM/PM - h:mm AM/PM". An overnight
// window is rendered unmodified, without a next-day annotation.
func (w Window) Display() string {
	return FormatMinutes(w.Start) + " - " + FormatMinutes(w.End)
}
