package leave

import (
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildIndex_SingleDayLeave(t *testing.T) {
	leaves := []leave.Leave{
		{
			ID:         "l1",
			EmployeeID: "e1",
			StartDate:  date(2026, 3, 10),
			EndDate:    date(2026, 3, 10),
			Status:     leave.StatusApproved,
		},
	}

	index, err := BuildIndex(leaves, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	require.Len(t, index, 1)
	entries := index["2026-03-10"]
	require.Len(t, entries, 1)
	assert.Equal(t, "l1", entries[0].LeaveID)
	assert.False(t, entries[0].IsSpanning)
}

func TestBuildIndex_MultiDayLeaveMarksEveryDaySpanning(t *testing.T) {
	leaves := []leave.Leave{
		{
			ID:        "l1",
			StartDate: date(2026, 3, 10),
			EndDate:   date(2026, 3, 12),
		},
	}

	index, err := BuildIndex(leaves, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	require.Len(t, index, 3)
	for _, key := range []string{"2026-03-10", "2026-03-11", "2026-03-12"} {
		entries := index[key]
		require.Len(t, entries, 1, key)
		assert.True(t, entries[0].IsSpanning, key)
	}
}

func TestBuildIndex_ClipsToRange(t *testing.T) {
	leaves := []leave.Leave{
		{
			ID:        "l1",
			StartDate: date(2026, 2, 27),
			EndDate:   date(2026, 3, 2),
		},
	}

	index, err := BuildIndex(leaves, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	assert.Len(t, index, 2)
	assert.Contains(t, index, "2026-03-01")
	assert.Contains(t, index, "2026-03-02")
	assert.NotContains(t, index, "2026-02-28")
}

func TestBuildIndex_DayEntriesSortedByStartDate(t *testing.T) {
	leaves := []leave.Leave{
		{ID: "late", StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 11)},
		{ID: "early", StartDate: date(2026, 3, 8), EndDate: date(2026, 3, 10)},
		{ID: "tied", StartDate: date(2026, 3, 9), EndDate: date(2026, 3, 10)},
	}

	index, err := BuildIndex(leaves, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)

	entries := index["2026-03-10"]
	require.Len(t, entries, 3)
	assert.Equal(t, "early", entries[0].LeaveID)
	assert.Equal(t, "late", entries[1].LeaveID, "equal start dates keep input order")
	assert.Equal(t, "tied", entries[2].LeaveID)
}

func TestBuildIndex_InvertedRange(t *testing.T) {
	_, err := BuildIndex(nil, date(2026, 3, 31), date(2026, 3, 1))
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestBuildIndex_EmptyInput(t *testing.T) {
	index, err := BuildIndex(nil, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)
	assert.Empty(t, index)
}

func TestBuildIndex_LeaveOutsideRangeDropped(t *testing.T) {
	leaves := []leave.Leave{
		{ID: "l1", StartDate: date(2026, 4, 1), EndDate: date(2026, 4, 3)},
	}

	index, err := BuildIndex(leaves, date(2026, 3, 1), date(2026, 3, 31))
	require.NoError(t, err)
	assert.Empty(t, index)
}
