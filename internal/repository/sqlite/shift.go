package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type posShiftRepositoryImpl struct {
	db *database.DB
}

func NewPOSShiftRepository(db *database.DB) shift.POSShiftRepository {
	return &posShiftRepositoryImpl{db: db}
}

const posShiftColumns = `id, user_id, business_id, terminal_id, schedule_id, time_shift_id,
	starting_cash, final_cash, expected_cash, total_sales, total_transactions, total_refunds, total_voids,
	status, end_reason, started_at, ended_at, created_at, updated_at`

func scanPOSShift(row interface{ Scan(...any) error }) (shift.POSShift, error) {
	var s shift.POSShift
	var scheduleID, timeShiftID, finalCash, expectedCash, endReason sql.NullString
	var startingCash, totalSales, totalRefunds string
	var startedAt, createdAt, updatedAt int64
	var endedAt sql.NullInt64
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.BusinessID,
		&s.TerminalID,
		&scheduleID,
		&timeShiftID,
		&startingCash,
		&finalCash,
		&expectedCash,
		&totalSales,
		&s.TotalTransactions,
		&totalRefunds,
		&s.TotalVoids,
		&s.Status,
		&endReason,
		&startedAt,
		&endedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return shift.POSShift{}, err
	}

	s.ScheduleID = strPtr(scheduleID)
	s.TimeShiftID = strPtr(timeShiftID)
	s.EndReason = strPtr(endReason)
	if s.StartingCash, err = parseDec(startingCash); err != nil {
		return shift.POSShift{}, err
	}
	if s.FinalCash, err = parseDecPtr(finalCash); err != nil {
		return shift.POSShift{}, err
	}
	if s.ExpectedCash, err = parseDecPtr(expectedCash); err != nil {
		return shift.POSShift{}, err
	}
	if s.TotalSales, err = parseDec(totalSales); err != nil {
		return shift.POSShift{}, err
	}
	if s.TotalRefunds, err = parseDec(totalRefunds); err != nil {
		return shift.POSShift{}, err
	}
	s.StartedAt = fromUnix(startedAt)
	s.EndedAt = fromNullUnix(endedAt)
	s.CreatedAt = fromUnix(createdAt)
	s.UpdatedAt = fromUnix(updatedAt)
	return s, nil
}

// Create implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) Create(ctx context.Context, s shift.POSShift) (shift.POSShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pos_shifts (id, user_id, business_id, terminal_id, schedule_id, time_shift_id,
			starting_cash, final_cash, expected_cash, total_sales, total_transactions, total_refunds, total_voids,
			status, end_reason, started_at, ended_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.BusinessID,
		s.TerminalID,
		nullStr(s.ScheduleID),
		nullStr(s.TimeShiftID),
		decStr(s.StartingCash),
		decPtr(s.FinalCash),
		decPtr(s.ExpectedCash),
		decStr(s.TotalSales),
		s.TotalTransactions,
		decStr(s.TotalRefunds),
		s.TotalVoids,
		s.Status,
		nullStr(s.EndReason),
		unix(s.StartedAt),
		unixPtr(s.EndedAt),
		unix(s.CreatedAt),
		unix(s.UpdatedAt),
	)
	if err != nil {
		return shift.POSShift{}, err
	}
	return s, nil
}

// GetByID implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (shift.POSShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + posShiftColumns + ` FROM pos_shifts WHERE id = ? AND business_id = ?`

	s, err := scanPOSShift(q.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return shift.POSShift{}, shift.ErrShiftNotFound
	}
	return s, err
}

// GetActiveByUser implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) GetActiveByUser(ctx context.Context, userID string) (*shift.POSShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + posShiftColumns + `
		FROM pos_shifts
		WHERE user_id = ? AND status = 'active'
		ORDER BY started_at DESC
		LIMIT 1
	`

	s, err := scanPOSShift(q.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) Update(ctx context.Context, s shift.POSShift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pos_shifts
		SET schedule_id = ?, time_shift_id = ?, final_cash = ?, expected_cash = ?,
			total_sales = ?, total_transactions = ?, total_refunds = ?, total_voids = ?,
			status = ?, end_reason = ?, ended_at = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := q.ExecContext(ctx, query,
		nullStr(s.ScheduleID),
		nullStr(s.TimeShiftID),
		decPtr(s.FinalCash),
		decPtr(s.ExpectedCash),
		decStr(s.TotalSales),
		s.TotalTransactions,
		decStr(s.TotalRefunds),
		s.TotalVoids,
		s.Status,
		nullStr(s.EndReason),
		unixPtr(s.EndedAt),
		unix(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ListActive implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) ListActive(ctx context.Context) ([]shift.POSShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + posShiftColumns + ` FROM pos_shifts WHERE status = 'active' ORDER BY started_at`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.POSShift
	for rows.Next() {
		s, err := scanPOSShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// CountActiveByTimeShift implements shift.POSShiftRepository.
func (r *posShiftRepositoryImpl) CountActiveByTimeShift(ctx context.Context, timeShiftID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM pos_shifts WHERE time_shift_id = ? AND status = 'active'`, timeShiftID).Scan(&count)
	return count, err
}
