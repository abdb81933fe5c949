package timeclock

import "context"

type TimeShiftRepository interface {
	Create(ctx context.Context, t TimeShift) (TimeShift, error)
	GetByID(ctx context.Context, id string) (TimeShift, error)
	// GetActiveByUser returns nil when the user is not clocked in.
	GetActiveByUser(ctx context.Context, userID string) (*TimeShift, error)
	Update(ctx context.Context, t TimeShift) error
}
