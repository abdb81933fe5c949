package shift

import (
	"context"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
)

type ShiftService interface {
	Start(ctx context.Context, userID string, businessID string, req StartShiftRequest) (ShiftResponse, error)
	End(ctx context.Context, userID string, req EndShiftRequest) (ShiftResponse, error)
	// GetActive sweeps overdue/stale shifts first and returns nil data when
	// the user has no active shift afterwards.
	GetActive(ctx context.Context, userID string) (*ShiftResponse, error)
	GetTodaySchedule(ctx context.Context, userID string, businessID string) (*schedule.ScheduleResponse, error)
	GetStats(ctx context.Context, businessID string, shiftID string) (ShiftStats, error)
	GetHourlyStats(ctx context.Context, businessID string, shiftID string) ([]HourlyStat, error)
	GetCashDrawerBalance(ctx context.Context, userID string) (CashDrawerBalance, error)
	RecordTransaction(ctx context.Context, userID string, req RecordTransactionRequest) (ShiftResponse, error)
	// Sweep auto-ends overdue shifts and auto-closes stale ones, cascading
	// clock-outs. Also run by the cron scheduler.
	Sweep(ctx context.Context) error
}
