package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List returns all employees, newest first.
	List(ctx context.Context) ([]Employee, error)

	// ListActive returns active employees only, the population the daily
	// status aggregation runs over.
	ListActive(ctx context.Context) ([]Employee, error)

	// ListActiveByShifts returns active employees whose assignment matches
	// any of the given shift codes.
	ListActiveByShifts(ctx context.Context, shiftCodes []string) ([]Employee, error)

	// CountByShift counts employees referencing a shift code, the guard
	// that blocks shift deletion.
	CountByShift(ctx context.Context, shiftCode string) (int, error)

	Update(ctx context.Context, emp Employee) (Employee, error)
	UpdateTodayStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}
