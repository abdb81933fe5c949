package timeclock

import "context"

type TimeclockService interface {
	ClockIn(ctx context.Context, userID string, businessID string, req ClockInRequest) (TimeShiftResponse, error)
	ClockOut(ctx context.Context, userID string) (TimeShiftResponse, error)
	StartBreak(ctx context.Context, userID string) (TimeShiftResponse, error)
	EndBreak(ctx context.Context, userID string) (TimeShiftResponse, error)
	// GetActive returns nil data when the user is not clocked in.
	GetActive(ctx context.Context, userID string) (*TimeShiftResponse, error)
}
