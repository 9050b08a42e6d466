package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTo12Hour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"12:00", "12:00 PM"},
		{"23:45", "11:45 PM"},
		{"01:05", "1:05 AM"},
		{"09:00", "9:00 AM"},
		{"13:07", "1:07 PM"},
		{"11:59", "11:59 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTo12Hour(tt.in))
		})
	}
}

func TestFormatTo12Hour_Malformed(t *testing.T) {
	t.Parallel()

	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-time", FormatTo12Hour("not-a-time"))
	assert.Equal(t, "25:00", FormatTo12Hour("25:00"))
}
