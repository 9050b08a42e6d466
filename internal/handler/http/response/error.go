package response

import (
	"errors"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/attendance"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/auth"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/employee"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/identity"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/shift"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, identity.ErrNoIdentity):
		Unauthorized(w, "Authentication required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInvalidShiftCode):
		BadRequest(w, "Invalid shift code", nil)
	case errors.Is(err, employee.ErrInvalidWeeklyOff):
		BadRequest(w, "Invalid weekly off days", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftCodeExists):
		Conflict(w, "Shift code already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")
	case errors.Is(err, shift.ErrNoActiveShift):
		NotFound(w, "No shift is active right now")
	case errors.Is(err, shift.ErrShiftsInitialized):
		Conflict(w, "Shifts are already initialized")
	case errors.Is(err, shift.ErrInvalidShiftCode):
		BadRequest(w, "Invalid shift code", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, "Start date must not be after end date", nil)
	case errors.Is(err, leave.ErrNotLeaveOwner):
		Forbidden(w, "Not authorized to access this leave")
	case errors.Is(err, leave.ErrLeaveNotPending):
		Conflict(w, "Only pending leaves can be modified")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave has already been approved or rejected")
	case errors.Is(err, leave.ErrStatusTransitionOnly):
		Forbidden(w, "Only admins may change leave status")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	case errors.Is(err, leave.ErrInvalidRequestData),
		errors.Is(err, attendance.ErrInvalidRequestData),
		errors.Is(err, employee.ErrInvalidRequestData),
		errors.Is(err, shift.ErrInvalidRequestData):
		BadRequest(w, "Invalid request data", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
