package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindow_Bounds(t *testing.T) {
	t.Parallel()

	_, err := NewWindow(-1, 600)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = NewWindow(600, 1440)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	w, err := NewWindow(17*60, 1*60)
	require.NoError(t, err)
	assert.True(t, w.IsOvernight())
}

func TestParseWindow(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("09:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, 540, w.Start)
	assert.Equal(t, 1020, w.End)

	_, err = ParseWindow("24:00", "17:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = ParseWindow("09:60", "17:00")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestWindowContains_Overnight(t *testing.T) {
	t.Parallel()

	// 17:00 - 01:00 spans midnight
	w, err := ParseWindow("17:00", "01:00")
	require.NoError(t, err)

	tests := []struct {
		name   string
		minute int
		want   bool
	}{
		{"late evening inside", 23*60 + 30, true},
		{"after wrap end", 1*60 + 30, false},
		{"start edge inclusive", 17 * 60, true},
		{"just before wrap end", 59, true},
		{"morning outside", 9 * 60, false},
		{"end edge exclusive", 1 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(tt.minute))
		})
	}
}

func TestWindowContains_DayShift(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("09:00", "17:00")
	require.NoError(t, err)

	assert.True(t, w.Contains(9*60))
	assert.True(t, w.Contains(12*60))
	assert.False(t, w.Contains(17*60))
	assert.False(t, w.Contains(8*60+59))
}

func TestWindowContains_FormulationsAgree(t *testing.T) {
	t.Parallel()

	// The wrap rule and the "extend end by a day" rule must agree for
	// every minute of the day.
	w, err := ParseWindow("22:00", "06:00")
	require.NoError(t, err)

	extendedEnd := w.End + MinutesPerDay
	for m := 0; m < MinutesPerDay; m++ {
		extended := (m >= w.Start && m < extendedEnd) ||
			(m+MinutesPerDay >= w.Start && m+MinutesPerDay < extendedEnd)
		assert.Equal(t, extended, w.Contains(m), "minute %d", m)
	}
}

func TestWindowDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"day shift", "09:00", "17:00", 480},
		{"overnight shift", "17:00", "01:00", 480},
		{"degenerate zero length", "23:00", "23:00", 0},
		{"one minute before midnight", "23:59", "00:00", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.Duration())
		})
	}
}

func TestWindowDisplay(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("17:00", "01:00")
	require.NoError(t, err)
	// Overnight windows render without a next-day marker.
	assert.Equal(t, "5:00 PM - 1:00 AM", w.Display())

	w, err = ParseWindow("09:00", "17:30")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM - 5:30 PM", w.Display())
}

func TestMinuteOfDay(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 10, 23, 30, 45, 0, time.UTC)
	assert.Equal(t, 23*60+30, MinuteOfDay(at))
}
