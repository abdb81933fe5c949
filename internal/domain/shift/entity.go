package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// End reasons recorded when a shift is closed by something other than the
// cashier pressing "end shift".
const (
	EndReasonUser    = "user"
	EndReasonOverdue = "auto_overdue"
	EndReasonStale   = "auto_stale"
)

// POSShift is a cash-drawer session. It optionally links to the schedule it
// fulfils and to the time shift (attendance envelope) it runs inside.
type POSShift struct {
	ID                string
	UserID            string
	BusinessID        string
	TerminalID        string
	ScheduleID        *string
	TimeShiftID       *string
	StartingCash      decimal.Decimal
	FinalCash         *decimal.Decimal
	ExpectedCash      *decimal.Decimal
	TotalSales        decimal.Decimal
	TotalTransactions int
	TotalRefunds      decimal.Decimal
	TotalVoids        int
	Status            Status
	EndReason         *string
	StartedAt         time.Time
	EndedAt           *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type TransactionType string

const (
	TransactionSale   TransactionType = "sale"
	TransactionRefund TransactionType = "refund"
	TransactionVoid   TransactionType = "void"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Transaction is a single drawer event inside a POS shift; stats and the
// expected cash calculation aggregate over these rows.
type Transaction struct {
	ID            string
	ShiftID       string
	BusinessID    string
	Type          TransactionType
	Amount        decimal.Decimal
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}
