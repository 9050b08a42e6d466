package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftCodeExists    = errors.New("shift with this code already exists")
	ErrInvalidShiftCode   = errors.New("shift code must be one of shift1..shift4")
	ErrShiftInUse         = errors.New("cannot delete shift while employees are assigned to it")
	ErrNoActiveShift      = errors.New("no active shift found")
	ErrShiftsInitialized  = errors.New("shifts already initialized")
	ErrInvalidRequestData = errors.New("invalid request data")
)
