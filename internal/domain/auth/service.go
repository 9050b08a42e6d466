package auth

import (
	"context"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
)

// AuthService defines credential-based authentication and self-service
// profile operations.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, actor identity.Actor) (employee.EmployeeResponse, error)
	UpdateProfile(ctx context.Context, actor identity.Actor, req UpdateProfileRequest) (employee.EmployeeResponse, error)
	UpdatePassword(ctx context.Context, actor identity.Actor, req UpdatePasswordRequest) error
}
