package shift

import (
	"context"
	"time"
)

// ShiftService defines business logic for the shift catalog and
// current-shift resolution.
type ShiftService interface {
	List(ctx context.Context) ([]ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)

	// Delete rejects removal while any employee references the shift code.
	Delete(ctx context.Context, id string) error

	// CurrentShift resolves which active shift window contains now.
	// Returns ErrNoActiveShift when the catalog has a gap at this instant;
	// that is an expected outcome, not a data failure.
	CurrentShift(ctx context.Context, now time.Time) (ShiftResponse, error)

	// Initialize seeds the default catalog; fails if shifts already exist.
	Initialize(ctx context.Context) error
}
