package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrInvalidWeeklyOff   = errors.New("weekly off must be unique lowercase weekday names")
	ErrInvalidShiftCode   = errors.New("invalid shift code for employee")
	ErrInvalidRequestData = errors.New("invalid request data")
)
