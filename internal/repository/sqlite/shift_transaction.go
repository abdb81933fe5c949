package sqlite

import (
	"context"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type transactionRepositoryImpl struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) shift.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

// Create implements shift.TransactionRepository.
func (r *transactionRepositoryImpl) Create(ctx context.Context, t shift.Transaction) (shift.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_transactions (id, shift_id, business_id, type, amount, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		t.ID,
		t.ShiftID,
		t.BusinessID,
		t.Type,
		decStr(t.Amount),
		t.PaymentMethod,
		unix(t.CreatedAt),
	)
	if err != nil {
		return shift.Transaction{}, err
	}
	return t, nil
}

// TotalsByShift implements shift.TransactionRepository. Voids count rows but
// contribute nothing to the money totals.
func (r *transactionRepositoryImpl) TotalsByShift(ctx context.Context, shiftID string) (shift.Totals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'sale' THEN CAST(amount AS REAL) ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'sale' AND payment_method = 'cash' THEN CAST(amount AS REAL) ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'refund' THEN CAST(amount AS REAL) ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'refund' AND payment_method = 'cash' THEN CAST(amount AS REAL) ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type IN ('sale', 'refund') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'void' THEN 1 ELSE 0 END), 0)
		FROM shift_transactions
		WHERE shift_id = ?
	`

	var sales, cashSales, refunds, cashRefunds float64
	var totals shift.Totals
	err := q.QueryRowContext(ctx, query, shiftID).Scan(
		&sales,
		&cashSales,
		&refunds,
		&cashRefunds,
		&totals.Transactions,
		&totals.Voids,
	)
	if err != nil {
		return shift.Totals{}, err
	}

	// Amounts come back through REAL aggregation; two decimal places is the
	// drawer's precision.
	totals.Sales = decimal.NewFromFloat(sales).Round(2)
	totals.CashSales = decimal.NewFromFloat(cashSales).Round(2)
	totals.Refunds = decimal.NewFromFloat(refunds).Round(2)
	totals.CashRefunds = decimal.NewFromFloat(cashRefunds).Round(2)
	return totals, nil
}

// HourlyByShift implements shift.TransactionRepository.
func (r *transactionRepositoryImpl) HourlyByShift(ctx context.Context, shiftID string) ([]shift.HourlyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			CAST(strftime('%H', created_at, 'unixepoch', 'localtime') AS INTEGER) AS hour,
			COUNT(*),
			COALESCE(SUM(CASE WHEN type = 'sale' THEN CAST(amount AS REAL) ELSE 0 END), 0)
		FROM shift_transactions
		WHERE shift_id = ?
		GROUP BY hour
		ORDER BY hour
	`

	rows, err := q.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []shift.HourlyStat
	for rows.Next() {
		var st shift.HourlyStat
		var amount float64
		if err := rows.Scan(&st.Hour, &st.Count, &amount); err != nil {
			return nil, err
		}
		st.Amount = decimal.NewFromFloat(amount).Round(2)
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// ListByShift implements shift.TransactionRepository.
func (r *transactionRepositoryImpl) ListByShift(ctx context.Context, shiftID string, from, to time.Time) ([]shift.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, business_id, type, amount, payment_method, created_at
		FROM shift_transactions
		WHERE shift_id = ? AND created_at >= ? AND created_at < ?
		ORDER BY created_at
	`

	rows, err := q.QueryContext(ctx, query, shiftID, unix(from), unix(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []shift.Transaction
	for rows.Next() {
		var t shift.Transaction
		var amount string
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.ShiftID, &t.BusinessID, &t.Type, &amount, &t.PaymentMethod, &createdAt); err != nil {
			return nil, err
		}
		if t.Amount, err = parseDec(amount); err != nil {
			return nil, err
		}
		t.CreatedAt = fromUnix(createdAt)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
