package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleOverlap  = errors.New("schedule overlaps an existing shift for this staff member")
	ErrInvalidTimeRange = errors.New("schedule start time must be before end time")
	ErrValidationFailed = errors.New("schedule validation failed")
)
