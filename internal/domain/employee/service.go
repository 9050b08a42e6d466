package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management. All
// operations are admin-only except Get, which owners may call for their
// own record.
type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error

	// UpdateTiming changes the employee's shift assignment and/or custom
	// working window.
	UpdateTiming(ctx context.Context, id string, req UpdateTimingRequest) (EmployeeResponse, error)
}
