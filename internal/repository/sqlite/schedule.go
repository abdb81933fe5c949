package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `id, business_id, staff_id, start_time, end_time, status, register_id, notes, created_by, created_at, updated_at`

func scanSchedule(row interface{ Scan(...any) error }) (schedule.Schedule, error) {
	var s schedule.Schedule
	var startTime, endTime, createdAt, updatedAt int64
	var registerID, notes sql.NullString
	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.StaffID,
		&startTime,
		&endTime,
		&s.Status,
		&registerID,
		&notes,
		&s.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return schedule.Schedule{}, err
	}
	s.StartTime = fromUnix(startTime)
	s.EndTime = fromUnix(endTime)
	s.RegisterID = strPtr(registerID)
	s.Notes = strPtr(notes)
	s.CreatedAt = fromUnix(createdAt)
	s.UpdatedAt = fromUnix(updatedAt)
	return s, nil
}

func (r *scheduleRepositoryImpl) queryList(ctx context.Context, query string, args ...any) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (id, business_id, staff_id, start_time, end_time, status, register_id, notes, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		s.ID,
		s.BusinessID,
		s.StaffID,
		unix(s.StartTime),
		unix(s.EndTime),
		s.Status,
		nullStr(s.RegisterID),
		nullStr(s.Notes),
		s.CreatedBy,
		unix(s.CreatedAt),
		unix(s.UpdatedAt),
	)
	if err != nil {
		return schedule.Schedule{}, err
	}
	return s, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = ? AND business_id = ?`

	s, err := scanSchedule(q.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, err
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, s schedule.Schedule) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET staff_id = ?, start_time = ?, end_time = ?, status = ?, register_id = ?, notes = ?, updated_at = ?
		WHERE id = ? AND business_id = ?
	`

	res, err := q.ExecContext(ctx, query,
		s.StaffID,
		unix(s.StartTime),
		unix(s.EndTime),
		s.Status,
		nullStr(s.RegisterID),
		nullStr(s.Notes),
		unix(s.UpdatedAt),
		s.ID,
		s.BusinessID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// UpdateStatus implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) UpdateStatus(ctx context.Context, id string, status schedule.Status) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `UPDATE schedules SET status = ?, updated_at = ? WHERE id = ?`, status, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM schedules WHERE id = ? AND business_id = ?`, id, businessID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// ListByBusiness implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, from, to time.Time) ([]schedule.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE business_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time
	`
	return r.queryList(ctx, query, businessID, unix(from), unix(to))
}

// ListByStaff implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByStaff(ctx context.Context, staffID string, businessID string) ([]schedule.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE staff_id = ? AND business_id = ?
		ORDER BY start_time
	`
	return r.queryList(ctx, query, staffID, businessID)
}

// ListByStaffBetween implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]schedule.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE staff_id = ? AND start_time >= ? AND start_time < ?
		ORDER BY start_time
	`
	return r.queryList(ctx, query, staffID, unix(from), unix(to))
}
