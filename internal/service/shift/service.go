package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	employee.EmployeeRepository
}

func NewShiftService(
	db *database.DB,
	shiftRepository shift.ShiftRepository,
	employeeRepository employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:                 db,
		ShiftRepository:    shiftRepository,
		EmployeeRepository: employeeRepository,
	}
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:              s.ID,
		Code:            s.Code,
		Name:            s.Name,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		StartTime12Hour: clock.FormatTo12Hour(s.StartTime),
		EndTime12Hour:   clock.FormatTo12Hour(s.EndTime),
		Description:     s.Description,
		Color:           s.Color,
		IsActive:        s.IsActive,
	}

	if w, err := s.Window(); err == nil {
		resp.DisplayTime = w.Display()
		resp.DurationMinutes = w.Duration()
		resp.IsOvernight = w.IsOvernight()
	}

	return resp
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}

	return responses, nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(sh), nil
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.Shift{
		Code:        req.Code,
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// Update implements shift.ShiftService. The code is immutable once created;
// only the window, labels and active flag can change.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		sh.Name = *req.Name
	}
	if req.StartTime != nil {
		sh.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		sh.EndTime = *req.EndTime
	}
	if req.Description != nil {
		sh.Description = *req.Description
	}
	if req.Color != nil {
		sh.Color = *req.Color
	}
	if req.IsActive != nil {
		sh.IsActive = *req.IsActive
	}

	updated, err := s.ShiftRepository.Update(ctx, sh)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(updated), nil
}

// Delete implements shift.ShiftService. Removal is blocked while any
// employee still references the shift code.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	sh, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.EmployeeRepository.CountByShift(ctx, sh.Code)
	if err != nil {
		return fmt.Errorf("failed to count employees by shift: %w", err)
	}
	if count > 0 {
		return shift.ErrShiftInUse
	}

	return s.ShiftRepository.Delete(ctx, id)
}

// CurrentShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CurrentShift(ctx context.Context, now time.Time) (shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, true)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to list active shifts: %w", err)
	}

	current, ok := ResolveCurrent(shifts, now)
	if !ok {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}

	return toShiftResponse(current), nil
}

// Initialize implements shift.ShiftService. The existence check and the
// seed run in one transaction so two racing calls cannot both seed.
func (s *ShiftServiceImpl) Initialize(ctx context.Context) error {
	return postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		count, err := s.ShiftRepository.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count shifts: %w", err)
		}
		if count > 0 {
			return shift.ErrShiftsInitialized
		}

		if err := s.ShiftRepository.CreateBatch(ctx, shift.DefaultShifts()); err != nil {
			return fmt.Errorf("failed to seed default shifts: %w", err)
		}

		return nil
	})
}
