package shift

import (
	"github.com/auraswift/pos-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type StartShiftRequest struct {
	TerminalID   string          `json:"terminal_id"`
	StartingCash decimal.Decimal `json:"starting_cash"`
	// Override lets a manager push past a hard schedule validation failure.
	Override bool `json:"override"`
}

func (r *StartShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TerminalID) {
		errs = append(errs, validator.ValidationError{Field: "terminal_id", Message: "terminal_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EndShiftRequest struct {
	FinalCash decimal.Decimal `json:"final_cash"`
}

type RecordTransactionRequest struct {
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
}

func (r *RecordTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{
		string(TransactionSale), string(TransactionRefund), string(TransactionVoid),
	}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of sale, refund, void"})
	}
	if !validator.IsInSlice(r.PaymentMethod, []string{string(PaymentCash), string(PaymentCard)}) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "payment_method must be one of cash, card"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	BusinessID        string           `json:"business_id"`
	TerminalID        string           `json:"terminal_id"`
	ScheduleID        *string          `json:"schedule_id,omitempty"`
	TimeShiftID       *string          `json:"time_shift_id,omitempty"`
	StartingCash      decimal.Decimal  `json:"starting_cash"`
	FinalCash         *decimal.Decimal `json:"final_cash,omitempty"`
	ExpectedCash      *decimal.Decimal `json:"expected_cash,omitempty"`
	TotalSales        decimal.Decimal  `json:"total_sales"`
	TotalTransactions int              `json:"total_transactions"`
	TotalRefunds      decimal.Decimal  `json:"total_refunds"`
	TotalVoids        int              `json:"total_voids"`
	Status            string           `json:"status"`
	EndReason         *string          `json:"end_reason,omitempty"`
	StartedAt         int64            `json:"started_at"`
	EndedAt           *int64           `json:"ended_at,omitempty"`
	Warnings          []string         `json:"warnings,omitempty"`
}

func ToResponse(s POSShift) ShiftResponse {
	resp := ShiftResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		BusinessID:        s.BusinessID,
		TerminalID:        s.TerminalID,
		ScheduleID:        s.ScheduleID,
		TimeShiftID:       s.TimeShiftID,
		StartingCash:      s.StartingCash,
		FinalCash:         s.FinalCash,
		ExpectedCash:      s.ExpectedCash,
		TotalSales:        s.TotalSales,
		TotalTransactions: s.TotalTransactions,
		TotalRefunds:      s.TotalRefunds,
		TotalVoids:        s.TotalVoids,
		Status:            string(s.Status),
		EndReason:         s.EndReason,
		StartedAt:         s.StartedAt.Unix(),
	}
	if s.EndedAt != nil {
		ended := s.EndedAt.Unix()
		resp.EndedAt = &ended
	}
	return resp
}

type ShiftStats struct {
	ShiftID           string          `json:"shift_id"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalRefunds      decimal.Decimal `json:"total_refunds"`
	TotalTransactions int             `json:"total_transactions"`
	TotalVoids        int             `json:"total_voids"`
	NetSales          decimal.Decimal `json:"net_sales"`
}

type CashDrawerBalance struct {
	ShiftID      string          `json:"shift_id"`
	StartingCash decimal.Decimal `json:"starting_cash"`
	CashSales    decimal.Decimal `json:"cash_sales"`
	CashRefunds  decimal.Decimal `json:"cash_refunds"`
	Balance      decimal.Decimal `json:"balance"`
}
