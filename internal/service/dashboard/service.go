package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dashboard"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/clock"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	shiftservice "github.com/shiftdesk/shiftdesk-backend-go/internal/service/shift"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	shift.ShiftRepository
	leave.LeaveRepository
	attendance.AttendanceRepository
}

func NewDashboardService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	shiftRepository shift.ShiftRepository,
	leaveRepository leave.LeaveRepository,
	attendanceRepository attendance.AttendanceRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		ShiftRepository:      shiftRepository,
		LeaveRepository:      leaveRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// dayInputs is everything the aggregation reads for one calendar day.
type dayInputs struct {
	employees   []employee.Employee
	shiftByCode map[string]shift.Shift
	leaves      []leave.Leave
	attByEmp    map[string]*attendance.Attendance
}

func (s *DashboardServiceImpl) loadDay(ctx context.Context, day time.Time) (dayInputs, error) {
	var in dayInputs

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		employees, err := s.EmployeeRepository.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("failed to list active employees: %w", err)
		}
		in.employees = employees
		return nil
	})

	g.Go(func() error {
		shifts, err := s.ShiftRepository.List(gctx, false)
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		in.shiftByCode = make(map[string]shift.Shift, len(shifts))
		for _, sh := range shifts {
			in.shiftByCode[sh.Code] = sh
		}
		return nil
	})

	g.Go(func() error {
		approved := leave.StatusApproved
		leaves, err := s.LeaveRepository.ListOverlapping(gctx, day, day, nil, &approved)
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		in.leaves = leaves
		return nil
	})

	g.Go(func() error {
		records, err := s.AttendanceRepository.ListForDay(gctx, day)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		in.attByEmp = make(map[string]*attendance.Attendance, len(records))
		for i := range records {
			in.attByEmp[records[i].EmployeeID] = &records[i]
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dayInputs{}, err
	}

	return in, nil
}

func displayTime(emp employee.Employee, shiftByCode map[string]shift.Shift) string {
	if w, err := emp.CustomWindow(); err == nil {
		return w.Display()
	}
	if sh, ok := shiftByCode[emp.Shift]; ok {
		if w, err := sh.Window(); err == nil {
			return w.Display()
		}
	}
	return ""
}

func (s *DashboardServiceImpl) resolveAll(in dayInputs, day time.Time) []dashboard.EmployeeDayStatus {
	statuses := make([]dashboard.EmployeeDayStatus, 0, len(in.employees))

	for _, emp := range in.employees {
		status, reason := ResolveDayStatus(emp, day, in.leaves, in.attByEmp[emp.ID])
		color, text := StatusDisplay(status)

		statuses = append(statuses, dashboard.EmployeeDayStatus{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			Name:         emp.Name,
			Email:        emp.Email,
			Shift:        emp.Shift,
			DisplayTime:  displayTime(emp, in.shiftByCode),
			TodayStatus:  string(status),
			StatusColor:  color,
			StatusText:   text,
			LeaveReason:  reason,
		})
	}

	return statuses
}

// TodayStatus implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TodayStatus(ctx context.Context, now time.Time) ([]dashboard.EmployeeDayStatus, error) {
	day := attendance.Day(now)

	in, err := s.loadDay(ctx, day)
	if err != nil {
		return nil, err
	}

	return s.resolveAll(in, day), nil
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context, now time.Time) (dashboard.DashboardResponse, error) {
	day := attendance.Day(now)

	in, err := s.loadDay(ctx, day)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	statuses := s.resolveAll(in, day)

	resp := dashboard.DashboardResponse{
		Date:      day.Format("2006-01-02"),
		Employees: statuses,
	}

	for _, st := range statuses {
		switch dashboard.DayStatus(st.TodayStatus) {
		case dashboard.StatusAbsent:
			resp.AbsentCount++
		case dashboard.StatusOnLeave:
			resp.OnLeaveCount++
		case dashboard.StatusWeeklyOff:
			resp.WeeklyOffCount++
		default:
			// present and half-day employees are on the floor
			resp.PresentCount++
		}
	}

	var active []shift.Shift
	for _, sh := range in.shiftByCode {
		if sh.IsActive {
			active = append(active, sh)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].StartTime < active[j].StartTime })

	if current, ok := shiftservice.ResolveCurrent(active, now); ok {
		resp.CurrentShift = &dashboard.CurrentShiftInfo{
			Code:        current.Code,
			Name:        current.Name,
			StartTime:   clock.FormatTo12Hour(current.StartTime),
			EndTime:     clock.FormatTo12Hour(current.EndTime),
			Color:       current.Color,
			Description: current.Description,
		}
	}

	return resp, nil
}
