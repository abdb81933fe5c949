package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s Schedule) (Schedule, error)
	GetByID(ctx context.Context, id string, businessID string) (Schedule, error)
	Update(ctx context.Context, s Schedule) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string, businessID string) error
	ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]Schedule, error)
	ListByStaff(ctx context.Context, staffID string, businessID string) ([]Schedule, error)
	// ListByStaffBetween returns schedules whose start falls in [from, to).
	ListByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]Schedule, error)
}
