package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	employeeService employee.EmployeeService
	jwtService      jwt.Service
}

func NewAuthService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	employeeService employee.EmployeeService,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		employeeService:    employeeService,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService. Unknown emails and bad passwords
// collapse into the same error so the response does not leak which one
// failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if emp.Status != employee.StatusActive {
		return auth.LoginResponse{}, auth.ErrAccountInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	resp, err := s.employeeService.Get(ctx, emp.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Employee:  resp,
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, actor identity.Actor) (employee.EmployeeResponse, error) {
	return s.employeeService.Get(ctx, actor.EmployeeID)
}

// UpdateProfile implements auth.AuthService.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, actor identity.Actor, req auth.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}

	if _, err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.employeeService.Get(ctx, emp.ID)
}

// UpdatePassword implements auth.AuthService.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, actor identity.Actor, req auth.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	emp.PasswordHash = string(hash)

	if _, err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return err
	}

	return nil
}
