package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	employee.EmployeeRepository
	sink notification.Sink
}

func NewLeaveService(
	db *database.DB,
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	sink notification.Sink,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                 db,
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		sink:               sink,
	}
}

func toLeaveResponse(l leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:            l.ID,
		EmployeeID:    l.EmployeeID,
		EmployeeName:  l.EmployeeName,
		EmployeeEmail: l.EmployeeEmail,
		StartDate:     l.StartDate.Format(DayKey),
		EndDate:       l.EndDate.Format(DayKey),
		Reason:        l.Reason,
		Type:          string(l.Type),
		Status:        string(l.Status),
		ApprovedBy:    l.ApprovedBy,
		Notes:         l.Notes,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     l.UpdatedAt.Format(time.RFC3339),
	}
}

func toLeaveResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, toLeaveResponse(l))
	}
	return responses
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayKey, s, time.UTC)
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, actor identity.Actor, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := parseDay(req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidRequestData
	}
	endDate, err := parseDay(req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidRequestData
	}

	leaveType := leave.TypePlanned
	if req.Type != "" {
		leaveType = leave.LeaveType(req.Type)
	}

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Type:       leaveType,
		Status:     leave.StatusPending,
		Notes:      req.Notes,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	created.EmployeeName = emp.Name
	created.EmployeeEmail = emp.Email

	s.sink.NewLeave(created)

	return toLeaveResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, actor identity.Actor, id string) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.IsAdmin() && !actor.Owns(l.EmployeeID) {
		return leave.LeaveResponse{}, leave.ErrNotLeaveOwner
	}

	return toLeaveResponse(l), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, actor identity.Actor) ([]leave.LeaveResponse, error) {
	var (
		leaves []leave.Leave
		err    error
	)
	if actor.IsAdmin() {
		leaves, err = s.LeaveRepository.List(ctx)
	} else {
		leaves, err = s.LeaveRepository.ListByEmployee(ctx, actor.EmployeeID)
	}
	if err != nil {
		return nil, err
	}

	return toLeaveResponses(leaves), nil
}

// Update implements leave.LeaveService. Status changes are admin-only and
// happen at most once per leave; field edits belong to the owner while the
// leave is still pending.
func (s *LeaveServiceImpl) Update(ctx context.Context, actor identity.Actor, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	statusChanged := false
	if req.Status != nil {
		if !actor.IsAdmin() {
			return leave.LeaveResponse{}, leave.ErrStatusTransitionOnly
		}
		if l.Status != leave.StatusPending {
			return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
		}
		l.Status = leave.LeaveStatus(*req.Status)
		approver := actor.EmployeeID
		l.ApprovedBy = &approver
		statusChanged = true
	}

	editsFields := req.StartDate != nil || req.EndDate != nil || req.Reason != nil || req.Type != nil || req.Notes != nil
	if editsFields {
		if !actor.IsAdmin() && !actor.Owns(l.EmployeeID) {
			return leave.LeaveResponse{}, leave.ErrNotLeaveOwner
		}
		if !statusChanged && l.Status != leave.StatusPending {
			return leave.LeaveResponse{}, leave.ErrLeaveNotPending
		}

		if req.StartDate != nil {
			if l.StartDate, err = parseDay(*req.StartDate); err != nil {
				return leave.LeaveResponse{}, leave.ErrInvalidRequestData
			}
		}
		if req.EndDate != nil {
			if l.EndDate, err = parseDay(*req.EndDate); err != nil {
				return leave.LeaveResponse{}, leave.ErrInvalidRequestData
			}
		}
		if l.StartDate.After(l.EndDate) {
			return leave.LeaveResponse{}, leave.ErrInvalidRange
		}
		if req.Reason != nil {
			l.Reason = *req.Reason
		}
		if req.Type != nil {
			l.Type = leave.LeaveType(*req.Type)
		}
		if req.Notes != nil {
			l.Notes = *req.Notes
		}
	}

	updated, err := s.LeaveRepository.Update(ctx, l)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if statusChanged {
		s.sink.LeaveStatusChanged(updated)
	}

	return toLeaveResponse(updated), nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actor identity.Actor, id string) error {
	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsAdmin() {
		if !actor.Owns(l.EmployeeID) {
			return leave.ErrNotLeaveOwner
		}
		if l.Status != leave.StatusPending {
			return leave.ErrLeaveNotPending
		}
	}

	return s.LeaveRepository.Delete(ctx, id)
}

// TodayLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) TodayLeaves(ctx context.Context, dayTime time.Time) ([]leave.LeaveResponse, error) {
	approved := leave.StatusApproved
	d := day(dayTime)

	leaves, err := s.LeaveRepository.ListOverlapping(ctx, d, d, nil, &approved)
	if err != nil {
		return nil, err
	}

	return toLeaveResponses(leaves), nil
}

// ListByStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByStatus(ctx context.Context, status leave.LeaveStatus) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	return toLeaveResponses(leaves), nil
}

// CreateEmergency implements leave.LeaveService. The leave lands already
// approved with the acting admin recorded as approver.
func (s *LeaveServiceImpl) CreateEmergency(ctx context.Context, actor identity.Actor, req leave.EmergencyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if !actor.IsAdmin() {
		return leave.LeaveResponse{}, leave.ErrStatusTransitionOnly
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := parseDay(req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidRequestData
	}
	endDate, err := parseDay(req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, leave.ErrInvalidRequestData
	}

	approver := actor.EmployeeID
	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Type:       leave.TypeEmergency,
		Status:     leave.StatusApproved,
		ApprovedBy: &approver,
		Notes:      req.Notes,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	created.EmployeeName = emp.Name
	created.EmployeeEmail = emp.Email

	s.sink.EmergencyLeaveAssigned(created)

	return toLeaveResponse(created), nil
}

// CalendarIndex implements leave.LeaveService.
func (s *LeaveServiceImpl) CalendarIndex(ctx context.Context, actor identity.Actor, rangeStart, rangeEnd time.Time) (map[string][]leave.IndexedLeave, error) {
	if day(rangeStart).After(day(rangeEnd)) {
		return nil, leave.ErrInvalidRange
	}

	var employeeID *string
	if !actor.IsAdmin() {
		id := actor.EmployeeID
		employeeID = &id
	}

	leaves, err := s.LeaveRepository.ListOverlapping(ctx, day(rangeStart), day(rangeEnd), employeeID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leaves: %w", err)
	}

	return BuildIndex(leaves, rangeStart, rangeEnd)
}
