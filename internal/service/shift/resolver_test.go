package shift

import (
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestResolveCurrent_DefaultCatalog(t *testing.T) {
	catalog := shift.DefaultShifts()

	tests := []struct {
		name     string
		now      time.Time
		wantCode string
		wantOK   bool
	}{
		{"mid morning shift", at(12, 0), "shift1", true},
		{"morning start edge", at(9, 0), "shift1", true},
		{"evening shift late night", at(23, 30), "shift2", true},
		{"evening shift just before wrap end", at(0, 59), "shift2", true},
		{"night shift start edge", at(1, 0), "shift3", true},
		{"night shift end is exclusive", at(9, 0), "shift1", true},
		{"early morning inside night shift", at(5, 15), "shift3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCurrent(catalog, tt.now)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestResolveCurrent_GapReturnsNoMatch(t *testing.T) {
	catalog := []shift.Shift{
		{Code: "shift1", StartTime: "09:00", EndTime: "17:00"},
	}

	_, ok := ResolveCurrent(catalog, at(18, 0))
	assert.False(t, ok)

	_, ok = ResolveCurrent(catalog, at(17, 0))
	assert.False(t, ok, "end edge is exclusive")
}

func TestResolveCurrent_FirstMatchWinsOnOverlap(t *testing.T) {
	catalog := []shift.Shift{
		{Code: "shift1", StartTime: "08:00", EndTime: "16:00"},
		{Code: "shift2", StartTime: "10:00", EndTime: "18:00"},
	}

	got, ok := ResolveCurrent(catalog, at(11, 0))
	require.True(t, ok)
	assert.Equal(t, "shift1", got.Code)
}

func TestResolveCurrent_EmptyCatalog(t *testing.T) {
	_, ok := ResolveCurrent(nil, at(12, 0))
	assert.False(t, ok)
}

func TestResolveCurrent_SkipsMalformedWindows(t *testing.T) {
	catalog := []shift.Shift{
		{Code: "shift1", StartTime: "garbage", EndTime: "17:00"},
		{Code: "shift2", StartTime: "09:00", EndTime: "17:00"},
	}

	got, ok := ResolveCurrent(catalog, at(12, 0))
	require.True(t, ok)
	assert.Equal(t, "shift2", got.Code)
}

func TestResolveCurrent_DefaultCatalogCoversEveryMinute(t *testing.T) {
	catalog := shift.DefaultShifts()

	for minute := 0; minute < 24*60; minute++ {
		now := at(minute/60, minute%60)

		matches := 0
		for _, s := range catalog {
			w, err := s.Window()
			require.NoError(t, err)
			if w.Contains(clock.MinuteOfDay(now)) {
				matches++
			}
		}
		require.Equalf(t, 1, matches, "minute %02d:%02d must belong to exactly one shift", minute/60, minute%60)

		_, ok := ResolveCurrent(catalog, now)
		require.Truef(t, ok, "no shift resolved at %02d:%02d", minute/60, minute%60)
	}
}
