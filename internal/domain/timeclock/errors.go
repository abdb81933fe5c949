package timeclock

import "errors"

var (
	ErrNotClockedIn      = errors.New("you must clock in first")
	ErrAlreadyClockedIn  = errors.New("you are already clocked in")
	ErrClockInNotAllowed = errors.New("clock-in is not allowed by your schedule")
	ErrBreakInProgress   = errors.New("a break is already in progress")
	ErrNoBreakInProgress = errors.New("no break is in progress")
	ErrShiftNotFound     = errors.New("time shift not found")
)
