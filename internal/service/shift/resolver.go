package shift

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
)

// ResolveCurrent scans the catalog in the order given and returns the first
// shift whose window contains the instant. The catalog's sort order is the
// tiebreak when windows overlap. A miss means no shift is running right now,
// which is a normal outcome between windows, so the bool carries it rather
// than an error. Shifts whose stored times fail to parse are skipped.
func ResolveCurrent(catalog []shift.Shift, now time.Time) (shift.Shift, bool) {
	minute := clock.MinuteOfDay(now)

	for _, s := range catalog {
		w, err := s.Window()
		if err != nil {
			continue
		}
		if w.Contains(minute) {
			return s, true
		}
	}

	return shift.Shift{}, false
}
