package leave

import (
	"sort"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
)

// DayKey is the calendar key format used by the per-day leave index.
const DayKey = "2006-01-02"

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildIndex expands leaves into a map keyed by calendar day. Each leave
// contributes one entry per day of its overlap with [rangeStart, rangeEnd];
// days outside the range are clipped away, so a leave straddling the range
// boundary appears only on its in-range days. Entries for a day are sorted
// ascending by leave start date, and the sort is stable so input order
// breaks ties. Days with no leave are absent from the map, not mapped to an
// empty slice.
func BuildIndex(leaves []leave.Leave, rangeStart, rangeEnd time.Time) (map[string][]leave.IndexedLeave, error) {
	start := day(rangeStart)
	end := day(rangeEnd)
	if start.After(end) {
		return nil, leave.ErrInvalidRange
	}

	index := make(map[string][]leave.IndexedLeave)

	for _, l := range leaves {
		leaveStart := day(l.StartDate)
		leaveEnd := day(l.EndDate)

		from := leaveStart
		if from.Before(start) {
			from = start
		}
		to := leaveEnd
		if to.After(end) {
			to = end
		}

		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			key := d.Format(DayKey)
			index[key] = append(index[key], leave.IndexedLeave{
				LeaveID:      l.ID,
				EmployeeID:   l.EmployeeID,
				EmployeeName: l.EmployeeName,
				Reason:       l.Reason,
				Type:         string(l.Type),
				Status:       string(l.Status),
				StartDate:    leaveStart,
				EndDate:      leaveEnd,
				Notes:        l.Notes,
				IsSpanning:   !d.Equal(leaveStart) || !d.Equal(leaveEnd),
			})
		}
	}

	for _, entries := range index {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartDate.Before(entries[j].StartDate)
		})
	}

	return index, nil
}
