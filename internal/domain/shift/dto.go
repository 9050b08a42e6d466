package shift

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsInSlice(r.Code, Codes) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be one of shift1, shift2, shift3, shift4",
		})
	}

	if !validator.IsValidTime24(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if !validator.IsValidTime24(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	Name        *string `json:"name,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil && !validator.IsValidTime24(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid HH:MM time",
		})
	}
	if r.EndTime != nil && !validator.IsValidTime24(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse carries the catalog entry plus the 12-hour display fields
// every timing surface renders from. The display strings are derived here
// once; clients must not reformat times themselves.
type ShiftResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	StartTime12Hour string `json:"start_time_12h"`
	EndTime12Hour   string `json:"end_time_12h"`
	DisplayTime     string `json:"display_time"`
	DurationMinutes int    `json:"duration_minutes"`
	IsOvernight     bool   `json:"is_overnight"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color,omitempty"`
	IsActive        bool   `json:"is_active"`
}
