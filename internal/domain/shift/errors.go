package shift

import "errors"

var (
	ErrShiftNotFound            = errors.New("shift not found")
	ErrNoActiveShift            = errors.New("no active shift")
	ErrShiftAlreadyActive       = errors.New("you already have an active shift on this terminal")
	ErrShiftActiveOtherTerminal = errors.New("you have an active shift on another terminal")
	ErrShiftEnded               = errors.New("shift has already ended")
	ErrNegativeStartingCash     = errors.New("Starting cash cannot be negative")
	ErrStartingCashTooHigh      = errors.New("starting cash exceeds the business limit")
	ErrScheduleValidationFailed = errors.New("schedule validation failed")
)
