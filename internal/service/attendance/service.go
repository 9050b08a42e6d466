package attendance

import (
	"context"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	sink notification.Sink
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	sink notification.Sink,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		sink:                 sink,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Shift:      a.Shift,
		Status:     string(a.Status),
		CheckIn:    timePtrToString(a.CheckIn),
		CheckOut:   timePtrToString(a.CheckOut),
		TotalHours: a.TotalHours,
		Notes:      a.Notes,
		MarkedBy:   a.MarkedBy,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}

// Mark implements attendance.AttendanceService. Marking twice for the same
// day replaces the previous mark instead of failing; re-marks keep any
// recorded check-in/check-out pair.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, actor identity.Actor, employeeID string, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day := attendance.Day(time.Now().UTC())
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
		if err != nil {
			return attendance.AttendanceResponse{}, attendance.ErrInvalidRequestData
		}
		day = parsed
	}

	// A flexible employee has no catalog assignment; the record pins the
	// default shift so downstream reports always carry a code.
	shiftCode := emp.Shift
	if emp.IsFlexible() {
		shiftCode = "shift1"
	}

	markedBy := actor.EmployeeID
	stored, err := s.AttendanceRepository.Upsert(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		Shift:      shiftCode,
		Status:     attendance.AttendanceStatus(req.Status),
		Notes:      req.Notes,
		MarkedBy:   &markedBy,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.sink.AttendanceMarked(stored)

	return toAttendanceResponse(stored), nil
}

// ListForDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListForDay(ctx context.Context, day time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]attendance.AttendanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses
}
