package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	shift.ShiftRepository
	sink notification.Sink
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	shiftRepository shift.ShiftRepository,
	sink notification.Sink,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		ShiftRepository:    shiftRepository,
		sink:               sink,
	}
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Name:         emp.Name,
		Email:        emp.Email,
		Phone:        emp.Phone,
		Shift:        emp.Shift,
		CustomStart:  emp.CustomStart,
		CustomEnd:    emp.CustomEnd,
		WeeklyOff:    emp.WeeklyOff,
		Role:         string(emp.Role),
		Status:       string(emp.Status),
		TodayStatus:  emp.TodayStatus,
		CreatedAt:    emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    emp.UpdatedAt.Format(time.RFC3339),
	}
	if resp.WeeklyOff == nil {
		resp.WeeklyOff = []string{}
	}

	if w, err := emp.CustomWindow(); err == nil {
		resp.DisplayTime = w.Display()
	} else if !emp.IsFlexible() {
		if sh, err := s.ShiftRepository.GetByCode(ctx, emp.Shift); err == nil {
			if w, err := sh.Window(); err == nil {
				resp.DisplayTime = w.Display()
			}
		}
	}

	return resp
}

func validShiftAssignment(code string) bool {
	if code == employee.ShiftFlexible {
		return true
	}
	return validator.IsInSlice(code, shift.Codes)
}

// nextEmployeeCode derives the next EMP#### display code from the current
// headcount, skipping forward past codes that are already taken.
func (s *EmployeeServiceImpl) nextEmployeeCode(ctx context.Context, taken map[string]bool) (string, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list employees: %w", err)
	}
	for _, emp := range employees {
		taken[emp.EmployeeCode] = true
	}

	for n := len(employees) + 1; n < len(employees)+10000; n++ {
		code := fmt.Sprintf("EMP%04d", n)
		if !taken[code] {
			return code, nil
		}
	}

	return "", errors.New("employee code space exhausted")
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, s.toResponse(ctx, emp))
	}

	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(ctx, emp), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	shiftCode := req.Shift
	if shiftCode == "" {
		shiftCode = "shift1"
	}
	if !validShiftAssignment(shiftCode) {
		return employee.EmployeeResponse{}, employee.ErrInvalidShiftCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := s.nextEmployeeCode(ctx, map[string]bool{})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	role := identity.RoleEmployee
	if req.Role == string(identity.RoleAdmin) {
		role = identity.RoleAdmin
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: code,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Shift:        shiftCode,
		CustomStart:  req.CustomStart,
		CustomEnd:    req.CustomEnd,
		WeeklyOff:    req.WeeklyOff,
		Role:         role,
		Status:       employee.StatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		emp.PasswordHash = string(hash)
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Shift != nil {
		if !validShiftAssignment(*req.Shift) {
			return employee.EmployeeResponse{}, employee.ErrInvalidShiftCode
		}
		emp.Shift = *req.Shift
	}
	if req.WeeklyOff != nil {
		emp.WeeklyOff = *req.WeeklyOff
	}
	if req.Role != nil {
		emp.Role = identity.Role(*req.Role)
	}
	if req.Status != nil {
		emp.Status = employee.EmployeeStatus(*req.Status)
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.sink.EmployeeUpdated(updated)

	return s.toResponse(ctx, updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// UpdateTiming implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateTiming(ctx context.Context, id string, req employee.UpdateTimingRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Shift != nil {
		if !validShiftAssignment(*req.Shift) {
			return employee.EmployeeResponse{}, employee.ErrInvalidShiftCode
		}
		emp.Shift = *req.Shift
	}
	if req.CustomStart != nil {
		emp.CustomStart = *req.CustomStart
	}
	if req.CustomEnd != nil {
		emp.CustomEnd = *req.CustomEnd
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.sink.EmployeeUpdated(updated)

	return s.toResponse(ctx, updated), nil
}
