package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave not found")
	ErrInvalidRange         = errors.New("start date must not be after end date")
	ErrNotLeaveOwner        = errors.New("not authorized to access this leave")
	ErrLeaveNotPending      = errors.New("only pending leaves can be modified")
	ErrAlreadyProcessed     = errors.New("leave has already been approved or rejected")
	ErrStatusTransitionOnly = errors.New("only admins may change leave status")
	ErrInvalidRequestData   = errors.New("invalid request data")
)
