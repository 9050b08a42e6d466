package attendance

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	Date   string `json:"date,omitempty"` // YYYY-MM-DD; empty means today
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, half_day, on_leave",
		})
	}

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Shift      string  `json:"shift"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	TotalHours float64 `json:"total_hours"`
	Notes      string  `json:"notes,omitempty"`
	MarkedBy   *string `json:"marked_by,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
