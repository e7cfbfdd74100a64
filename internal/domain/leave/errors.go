package leave

import "errors"

var (
	ErrLeaveNotFound             = errors.New("leave not found")
	ErrLeaveNotPending           = errors.New("leave is not pending")
	ErrInvalidDuration           = errors.New("invalid leave duration")
	ErrInsufficientLeaveBalance  = errors.New("insufficient leave balance")
	ErrInsufficientFlexibleHours = errors.New("insufficient flexible hours")
)
