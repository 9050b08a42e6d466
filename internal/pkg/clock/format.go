package clock

import "fmt"

// FormatTo12Hour converts a 24-hour "HH:MM" string into "h:mm AM/PM".
// Hour 0 renders as 12 AM and hour 12 as 12 PM; the hour carries no leading
// zero while minutes are always two digits. Malformed input is returned
// unchanged so display code degrades instead of erroring.
func FormatTo12Hour(time24 string) string {
	minutes, err := ParseMinutes(time24)
	if err != nil {
		return time24
	}
	return FormatMinutes(minutes)
}

// FormatMinutes renders minutes-since-midnight as "h:mm AM/PM".
func FormatMinutes(minuteOfDay int) string {
	hours := minuteOfDay / 60
	minutes := minuteOfDay % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}
