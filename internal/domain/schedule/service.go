package schedule

import "context"

type ScheduleService interface {
	Create(ctx context.Context, businessID string, actorID string, req CreateScheduleRequest) (ScheduleResponse, error)
	Update(ctx context.Context, businessID string, req UpdateScheduleRequest) (ScheduleResponse, error)
	Delete(ctx context.Context, businessID string, id string) error
	GetByBusiness(ctx context.Context, businessID string, fromUnix, toUnix int64) ([]ScheduleResponse, error)
	GetByStaff(ctx context.Context, businessID string, staffID string) ([]ScheduleResponse, error)
	ValidateClockIn(ctx context.Context, userID string, businessID string) (ClockInValidation, error)
}
