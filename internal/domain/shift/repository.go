package shift

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type POSShiftRepository interface {
	Create(ctx context.Context, s POSShift) (POSShift, error)
	GetByID(ctx context.Context, id string, businessID string) (POSShift, error)
	// GetActiveByUser returns nil when the user has no active shift.
	GetActiveByUser(ctx context.Context, userID string) (*POSShift, error)
	Update(ctx context.Context, s POSShift) error
	ListActive(ctx context.Context) ([]POSShift, error)
	// CountActiveByTimeShift counts active POS shifts still referencing a
	// time shift; the auto-clock-out cascade fires when it reaches zero.
	CountActiveByTimeShift(ctx context.Context, timeShiftID string) (int64, error)
}

// Totals is the aggregate of a shift's transactions.
type Totals struct {
	Sales        decimal.Decimal
	CashSales    decimal.Decimal
	Refunds      decimal.Decimal
	CashRefunds  decimal.Decimal
	Transactions int
	Voids        int
}

// HourlyStat is one hour bucket of transaction activity.
type HourlyStat struct {
	Hour   int             `json:"hour"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (Transaction, error)
	TotalsByShift(ctx context.Context, shiftID string) (Totals, error)
	HourlyByShift(ctx context.Context, shiftID string) ([]HourlyStat, error)
	ListByShift(ctx context.Context, shiftID string, from, to time.Time) ([]Transaction, error)
}
