package employee

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Phone       string   `json:"phone"`
	Shift       string   `json:"shift,omitempty"`
	CustomStart string   `json:"custom_start,omitempty"`
	CustomEnd   string   `json:"custom_end,omitempty"`
	WeeklyOff   []string `json:"weekly_off,omitempty"`
	Role        string   `json:"role,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if r.CustomStart != "" && !validator.IsValidTime24(r.CustomStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_start",
			Message: "custom_start must be a valid HH:MM time",
		})
	}
	if r.CustomEnd != "" && !validator.IsValidTime24(r.CustomEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_end",
			Message: "custom_end must be a valid HH:MM time",
		})
	}

	errs = append(errs, validateWeeklyOff(r.WeeklyOff)...)

	if r.Role != "" && r.Role != "admin" && r.Role != "employee" {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be 'admin' or 'employee'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Password  *string   `json:"password,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Shift     *string   `json:"shift,omitempty"`
	WeeklyOff *[]string `json:"weekly_off,omitempty"`
	Role      *string   `json:"role,omitempty"`
	Status    *string   `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}

	// An empty password means "keep the current one"; only a supplied
	// short password is rejected.
	if r.Password != nil && *r.Password != "" && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.WeeklyOff != nil {
		errs = append(errs, validateWeeklyOff(*r.WeeklyOff)...)
	}

	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be 'active' or 'inactive'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTimingRequest struct {
	Shift       *string `json:"shift,omitempty"`
	CustomStart *string `json:"custom_start,omitempty"`
	CustomEnd   *string `json:"custom_end,omitempty"`
}

func (r *UpdateTimingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CustomStart != nil && !validator.IsValidTime24(*r.CustomStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_start",
			Message: "custom_start must be a valid HH:MM time",
		})
	}
	if r.CustomEnd != nil && !validator.IsValidTime24(*r.CustomEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "custom_end",
			Message: "custom_end must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateWeeklyOff(days []string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for _, day := range days {
		if !validator.IsInSlice(day, WeekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_off",
				Message: "weekly_off entries must be lowercase weekday names",
			})
			break
		}
	}
	if validator.HasDuplicates(days) {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_off",
			Message: "weekly_off must not contain duplicate weekdays",
		})
	}

	return errs
}

type EmployeeResponse struct {
	ID           string   `json:"id"`
	EmployeeCode string   `json:"employee_code"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Shift        string   `json:"shift"`
	CustomStart  string   `json:"custom_start"`
	CustomEnd    string   `json:"custom_end"`
	DisplayTime  string   `json:"display_time"`
	WeeklyOff    []string `json:"weekly_off"`
	Role         string   `json:"role"`
	Status       string   `json:"status"`
	TodayStatus  string   `json:"today_status,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}
