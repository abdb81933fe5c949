package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type timeShiftRepositoryImpl struct {
	db *database.DB
}

func NewTimeShiftRepository(db *database.DB) timeclock.TimeShiftRepository {
	return &timeShiftRepositoryImpl{db: db}
}

const timeShiftColumns = `id, user_id, business_id, schedule_id, clock_in, clock_out, clock_out_source, break_start, break_minutes, status, created_at, updated_at`

func scanTimeShift(row interface{ Scan(...any) error }) (timeclock.TimeShift, error) {
	var t timeclock.TimeShift
	var scheduleID, clockOutSource sql.NullString
	var clockIn, createdAt, updatedAt int64
	var clockOut, breakStart sql.NullInt64
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.BusinessID,
		&scheduleID,
		&clockIn,
		&clockOut,
		&clockOutSource,
		&breakStart,
		&t.BreakMinutes,
		&t.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return timeclock.TimeShift{}, err
	}
	t.ScheduleID = strPtr(scheduleID)
	t.ClockIn = fromUnix(clockIn)
	t.ClockOut = fromNullUnix(clockOut)
	t.ClockOutSource = strPtr(clockOutSource)
	t.BreakStart = fromNullUnix(breakStart)
	t.CreatedAt = fromUnix(createdAt)
	t.UpdatedAt = fromUnix(updatedAt)
	return t, nil
}

// Create implements timeclock.TimeShiftRepository.
func (r *timeShiftRepositoryImpl) Create(ctx context.Context, t timeclock.TimeShift) (timeclock.TimeShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_shifts (id, user_id, business_id, schedule_id, clock_in, clock_out, clock_out_source, break_start, break_minutes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.BusinessID,
		nullStr(t.ScheduleID),
		unix(t.ClockIn),
		unixPtr(t.ClockOut),
		nullStr(t.ClockOutSource),
		unixPtr(t.BreakStart),
		t.BreakMinutes,
		t.Status,
		unix(t.CreatedAt),
		unix(t.UpdatedAt),
	)
	if err != nil {
		return timeclock.TimeShift{}, err
	}
	return t, nil
}

// GetByID implements timeclock.TimeShiftRepository.
func (r *timeShiftRepositoryImpl) GetByID(ctx context.Context, id string) (timeclock.TimeShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + timeShiftColumns + ` FROM time_shifts WHERE id = ?`

	t, err := scanTimeShift(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return timeclock.TimeShift{}, timeclock.ErrShiftNotFound
	}
	return t, err
}

// GetActiveByUser implements timeclock.TimeShiftRepository.
func (r *timeShiftRepositoryImpl) GetActiveByUser(ctx context.Context, userID string) (*timeclock.TimeShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeShiftColumns + `
		FROM time_shifts
		WHERE user_id = ? AND status = 'active'
		ORDER BY clock_in DESC
		LIMIT 1
	`

	t, err := scanTimeShift(q.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update implements timeclock.TimeShiftRepository.
func (r *timeShiftRepositoryImpl) Update(ctx context.Context, t timeclock.TimeShift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_shifts
		SET schedule_id = ?, clock_out = ?, clock_out_source = ?, break_start = ?, break_minutes = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := q.ExecContext(ctx, query,
		nullStr(t.ScheduleID),
		unixPtr(t.ClockOut),
		nullStr(t.ClockOutSource),
		unixPtr(t.BreakStart),
		t.BreakMinutes,
		t.Status,
		unix(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return timeclock.ErrShiftNotFound
	}
	return nil
}
