package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leaves map[string]leave.Leave
	nextID int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[string]leave.Leave)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	f.nextID++
	l.ID = "l" + time.Now().Format("150405") + string(rune('a'+f.nextID))
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	if l, ok := f.leaves[id]; ok {
		return l, nil
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (f *fakeLeaveRepo) List(context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.LeaveStatus) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListOverlapping(_ context.Context, rangeStart, rangeEnd time.Time, employeeID *string, status *leave.LeaveStatus) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range f.leaves {
		if l.StartDate.After(rangeEnd) || l.EndDate.Before(rangeStart) {
			continue
		}
		if employeeID != nil && l.EmployeeID != *employeeID {
			continue
		}
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, l leave.Leave) (leave.Leave, error) {
	if _, ok := f.leaves[l.ID]; !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	f.leaves[l.ID] = l
	return l, nil
}

func (f *fakeLeaveRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.leaves[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(f.leaves, id)
	return nil
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

var (
	adminActor = identity.Actor{EmployeeID: "admin-1", Role: identity.RoleAdmin}
	ownerActor = identity.Actor{EmployeeID: "e1", Role: identity.RoleEmployee}
	otherActor = identity.Actor{EmployeeID: "e2", Role: identity.RoleEmployee}
)

func newLeaveService(repo *fakeLeaveRepo) leave.LeaveService {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e1": {ID: "e1", Name: "One", Email: "one@example.com"},
		"e2": {ID: "e2", Name: "Two", Email: "two@example.com"},
	}}
	return NewLeaveService(nil, repo, empRepo, notification.NopSink{})
}

func pendingLeave(repo *fakeLeaveRepo) leave.Leave {
	l, _ := repo.Create(context.Background(), leave.Leave{
		EmployeeID: "e1",
		StartDate:  date(2026, 3, 10),
		EndDate:    date(2026, 3, 11),
		Reason:     "trip",
		Type:       leave.TypePlanned,
		Status:     leave.StatusPending,
	})
	return l
}

func strPtr(s string) *string { return &s }

func TestUpdate_AdminApprovesOnce(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	resp, err := svc.Update(context.Background(), adminActor, l.ID, leave.UpdateLeaveRequest{
		Status: strPtr("approved"),
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "admin-1", *resp.ApprovedBy)

	_, err = svc.Update(context.Background(), adminActor, l.ID, leave.UpdateLeaveRequest{
		Status: strPtr("rejected"),
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestUpdate_NonAdminCannotChangeStatus(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	_, err := svc.Update(context.Background(), ownerActor, l.ID, leave.UpdateLeaveRequest{
		Status: strPtr("approved"),
	})
	assert.ErrorIs(t, err, leave.ErrStatusTransitionOnly)
}

func TestUpdate_OwnerEditsPendingFields(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	resp, err := svc.Update(context.Background(), ownerActor, l.ID, leave.UpdateLeaveRequest{
		Reason: strPtr("family trip"),
	})
	require.NoError(t, err)
	assert.Equal(t, "family trip", resp.Reason)
}

func TestUpdate_StrangerCannotEdit(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	_, err := svc.Update(context.Background(), otherActor, l.ID, leave.UpdateLeaveRequest{
		Reason: strPtr("not yours"),
	})
	assert.ErrorIs(t, err, leave.ErrNotLeaveOwner)
}

func TestUpdate_ProcessedLeaveFieldsFrozen(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	_, err := svc.Update(context.Background(), adminActor, l.ID, leave.UpdateLeaveRequest{
		Status: strPtr("approved"),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), ownerActor, l.ID, leave.UpdateLeaveRequest{
		Reason: strPtr("change it"),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveNotPending)
}

func TestUpdate_InvertedRangeRejected(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	_, err := svc.Update(context.Background(), ownerActor, l.ID, leave.UpdateLeaveRequest{
		StartDate: strPtr("2026-03-20"),
		EndDate:   strPtr("2026-03-15"),
	})
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestDelete_OwnerOnlyWhilePending(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	l := pendingLeave(repo)

	err := svc.Delete(context.Background(), otherActor, l.ID)
	assert.ErrorIs(t, err, leave.ErrNotLeaveOwner)

	_, err = svc.Update(context.Background(), adminActor, l.ID, leave.UpdateLeaveRequest{
		Status: strPtr("approved"),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), ownerActor, l.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotPending)

	err = svc.Delete(context.Background(), adminActor, l.ID)
	assert.NoError(t, err)
}

func TestCreateEmergency_PreApproved(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	resp, err := svc.CreateEmergency(context.Background(), adminActor, leave.EmergencyLeaveRequest{
		EmployeeID: "e1",
		StartDate:  "2026-03-10",
		EndDate:    "2026-03-10",
		Reason:     "hospital",
	})
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "emergency", resp.Type)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "admin-1", *resp.ApprovedBy)
}

func TestCreateEmergency_AdminOnly(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	_, err := svc.CreateEmergency(context.Background(), ownerActor, leave.EmergencyLeaveRequest{
		EmployeeID: "e2",
		StartDate:  "2026-03-10",
		EndDate:    "2026-03-10",
		Reason:     "nope",
	})
	assert.ErrorIs(t, err, leave.ErrStatusTransitionOnly)
}

func TestApply_DefaultsToPlannedPending(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)

	resp, err := svc.Apply(context.Background(), ownerActor, leave.ApplyLeaveRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-12",
		Reason:    "vacation",
	})
	require.NoError(t, err)

	assert.Equal(t, "planned", resp.Type)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "One", resp.EmployeeName)
}

func TestList_NonAdminSeesOwnOnly(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newLeaveService(repo)
	pendingLeave(repo)
	repo.Create(context.Background(), leave.Leave{
		EmployeeID: "e2",
		StartDate:  date(2026, 3, 10),
		EndDate:    date(2026, 3, 10),
		Status:     leave.StatusPending,
	})

	mine, err := svc.List(context.Background(), ownerActor)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "e1", mine[0].EmployeeID)

	all, err := svc.List(context.Background(), adminActor)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
