package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// Role is the caller's authorization role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var ErrNoIdentity = errors.New("no authenticated identity in context")

// Actor is the authenticated caller. Operations whose behavior depends on
// who is calling take an Actor explicitly instead of re-reading claims.
type Actor struct {
	EmployeeID string
	Email      string
	Role       Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor is the employee identified by id.
func (a Actor) Owns(employeeID string) bool {
	return a.EmployeeID == employeeID
}

// FromContext builds an Actor from the jwtauth claims placed in the request
// context by the token verifier middleware.
func FromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Actor{}, ErrNoIdentity
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Actor{}, ErrNoIdentity
	}

	email, _ := claims["email"].(string)

	return Actor{
		EmployeeID: employeeID,
		Email:      email,
		Role:       Role(role),
	}, nil
}
