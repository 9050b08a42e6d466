package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + attendance.Day(date).Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.Date = attendance.Day(att.Date)
	k := f.key(att.EmployeeID, att.Date)

	if existing, ok := f.records[k]; ok {
		existing.Shift = att.Shift
		existing.Status = att.Status
		existing.Notes = att.Notes
		existing.MarkedBy = att.MarkedBy
		if att.CheckIn != nil {
			existing.CheckIn = att.CheckIn
		}
		if att.CheckOut != nil {
			existing.CheckOut = att.CheckOut
		}
		if att.TotalHours > 0 {
			existing.TotalHours = att.TotalHours
		}
		f.records[k] = existing
		return existing, nil
	}

	if att.ID == "" {
		att.ID = "att-" + k
	}
	f.records[k] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if a, ok := f.records[f.key(employeeID, date)]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListForDay(_ context.Context, day time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.Date.Equal(attendance.Day(day)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, rangeStart, rangeEnd time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.EmployeeID == employeeID && !a.Date.Before(attendance.Day(rangeStart)) && !a.Date.After(attendance.Day(rangeEnd)) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(context.Context) ([]employee.Employee, error)       { return nil, nil }
func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListActiveByShifts(context.Context, []string) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) CountByShift(context.Context, string) (int, error) { return 0, nil }
func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) UpdateTodayStatus(context.Context, string, string) error { return nil }
func (f *fakeEmployeeRepo) Delete(context.Context, string) error                    { return nil }

type recordingSink struct {
	notification.NopSink
	marked []attendance.Attendance
}

func (r *recordingSink) AttendanceMarked(att attendance.Attendance) {
	r.marked = append(r.marked, att)
}

func newService(employees ...employee.Employee) (attendance.AttendanceService, *fakeAttendanceRepo, *recordingSink) {
	empRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		empRepo.employees[e.ID] = e
	}
	attRepo := newFakeAttendanceRepo()
	sink := &recordingSink{}
	return NewAttendanceService(nil, attRepo, empRepo, sink), attRepo, sink
}

var admin = identity.Actor{EmployeeID: "admin-1", Role: identity.RoleAdmin}

func TestMark_CreatesSingleRecordPerDay(t *testing.T) {
	svc, repo, _ := newService(employee.Employee{ID: "e1", Shift: "shift2"})

	_, err := svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{
		Date: "2026-03-10", Status: "present",
	})
	require.NoError(t, err)

	_, err = svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{
		Date: "2026-03-10", Status: "absent", Notes: "called in",
	})
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Equal(t, "called in", rec.Notes)
	}
}

func TestMark_ReMarkPreservesCheckTimes(t *testing.T) {
	svc, repo, _ := newService(employee.Employee{ID: "e1", Shift: "shift1"})

	checkIn := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	_, err := repo.Upsert(context.Background(), attendance.Attendance{
		EmployeeID: "e1",
		Date:       checkIn,
		Status:     attendance.StatusPresent,
		CheckIn:    &checkIn,
		TotalHours: 4.5,
	})
	require.NoError(t, err)

	resp, err := svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{
		Date: "2026-03-10", Status: "half_day",
	})
	require.NoError(t, err)

	assert.Equal(t, "half_day", resp.Status)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, checkIn.Format(time.RFC3339), *resp.CheckIn)
	assert.Equal(t, 4.5, resp.TotalHours)
}

func TestMark_UnknownEmployee(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Mark(context.Background(), admin, "ghost", attendance.MarkAttendanceRequest{Status: "present"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMark_FlexibleEmployeeRecordedAsShift1(t *testing.T) {
	svc, _, _ := newService(employee.Employee{ID: "e1", Shift: employee.ShiftFlexible})

	resp, err := svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{
		Date: "2026-03-10", Status: "present",
	})
	require.NoError(t, err)

	assert.Equal(t, "shift1", resp.Shift)
}

func TestMark_RecordsActorAndEmitsNotification(t *testing.T) {
	svc, _, sink := newService(employee.Employee{ID: "e1", Shift: "shift1"})

	resp, err := svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{
		Date: "2026-03-10", Status: "present",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.MarkedBy)
	assert.Equal(t, "admin-1", *resp.MarkedBy)

	require.Len(t, sink.marked, 1)
	assert.Equal(t, "e1", sink.marked[0].EmployeeID)
}

func TestMark_InvalidStatusRejected(t *testing.T) {
	svc, _, _ := newService(employee.Employee{ID: "e1", Shift: "shift1"})

	_, err := svc.Mark(context.Background(), admin, "e1", attendance.MarkAttendanceRequest{Status: "vacationing"})

	assert.Error(t, err)
}
