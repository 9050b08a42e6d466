package leave

import "time"

type LeaveType string

const (
	TypePlanned   LeaveType = "planned"
	TypeEmergency LeaveType = "emergency"
	TypeSick      LeaveType = "sick"
	TypeCasual    LeaveType = "casual"
)

var LeaveTypeValues = []string{
	string(TypePlanned),
	string(TypeEmergency),
	string(TypeSick),
	string(TypeCasual),
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// Leave is a date-ranged leave request. StartDate and EndDate are inclusive
// calendar dates normalized to midnight UTC; StartDate <= EndDate always.
// Only approved leaves count toward daily status.
type Leave struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	EmployeeEmail string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	Type          LeaveType
	Status        LeaveStatus
	ApprovedBy    *string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Covers reports whether the inclusive [StartDate, EndDate] interval
// contains the given calendar day.
func (l Leave) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(l.StartDate) && !d.After(l.EndDate)
}
