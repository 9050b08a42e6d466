package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, newShift Shift) (Shift, error)
	CreateBatch(ctx context.Context, shifts []Shift) error
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByCode(ctx context.Context, code string) (Shift, error)

	// List returns shifts ordered by start time ascending, the catalog's
	// natural sort and the ordering the current-shift resolution relies on.
	List(ctx context.Context, activeOnly bool) ([]Shift, error)

	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, id string) error
}
