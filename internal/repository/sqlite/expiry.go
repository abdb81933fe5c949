package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/expiry"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type batchRepositoryImpl struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) expiry.BatchRepository {
	return &batchRepositoryImpl{db: db}
}

// Create implements expiry.BatchRepository.
func (r *batchRepositoryImpl) Create(ctx context.Context, b expiry.Batch) (expiry.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO product_batches (id, business_id, product_name, batch_code, quantity, expiry_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		b.ID,
		b.BusinessID,
		b.ProductName,
		b.BatchCode,
		b.Quantity,
		unix(b.ExpiryDate),
		unix(b.CreatedAt),
	)
	if err != nil {
		return expiry.Batch{}, err
	}
	return b, nil
}

// ListByBusiness implements expiry.BatchRepository.
func (r *batchRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]expiry.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, product_name, batch_code, quantity, expiry_date, created_at
		FROM product_batches
		WHERE business_id = ?
		ORDER BY expiry_date
	`

	rows, err := q.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []expiry.Batch
	for rows.Next() {
		var b expiry.Batch
		var expiryDate, createdAt int64
		if err := rows.Scan(&b.ID, &b.BusinessID, &b.ProductName, &b.BatchCode, &b.Quantity, &expiryDate, &createdAt); err != nil {
			return nil, err
		}
		b.ExpiryDate = fromUnix(expiryDate)
		b.CreatedAt = fromUnix(createdAt)
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// ListAllBusinessIDs implements expiry.BatchRepository.
func (r *batchRepositoryImpl) ListAllBusinessIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT DISTINCT business_id FROM product_batches`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) expiry.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Upsert implements expiry.NotificationRepository.
func (r *notificationRepositoryImpl) Upsert(ctx context.Context, n expiry.Notification) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expiry_notifications (id, business_id, batch_id, product_name, expiry_date, days_until_expiry, level, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (batch_id, level) DO NOTHING
	`

	res, err := q.ExecContext(ctx, query,
		n.ID,
		n.BusinessID,
		n.BatchID,
		n.ProductName,
		unix(n.ExpiryDate),
		n.DaysUntilExpiry,
		n.Level,
		n.Status,
		unix(n.CreatedAt),
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListByBusiness implements expiry.NotificationRepository.
func (r *notificationRepositoryImpl) ListByBusiness(ctx context.Context, businessID string, status *expiry.NotificationStatus) ([]expiry.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, business_id, batch_id, product_name, expiry_date, days_until_expiry, level, status, created_at
		FROM expiry_notifications
		WHERE business_id = ?
	`
	args := []any{businessID}
	if status != nil {
		query += ` AND status = ?`
		args = append(args, *status)
	}
	query += ` ORDER BY expiry_date, level`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []expiry.Notification
	for rows.Next() {
		var n expiry.Notification
		var expiryDate, createdAt int64
		if err := rows.Scan(&n.ID, &n.BusinessID, &n.BatchID, &n.ProductName, &expiryDate, &n.DaysUntilExpiry, &n.Level, &n.Status, &createdAt); err != nil {
			return nil, err
		}
		n.ExpiryDate = fromUnix(expiryDate)
		n.CreatedAt = fromUnix(createdAt)
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// UpdateStatus implements expiry.NotificationRepository.
func (r *notificationRepositoryImpl) UpdateStatus(ctx context.Context, id string, businessID string, status expiry.NotificationStatus) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `UPDATE expiry_notifications SET status = ? WHERE id = ? AND business_id = ?`, status, id, businessID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return expiry.ErrNotificationNotFound
	}
	return nil
}

type expirySettingsRepositoryImpl struct {
	db *database.DB
}

func NewExpirySettingsRepository(db *database.DB) expiry.SettingsRepository {
	return &expirySettingsRepositoryImpl{db: db}
}

// Get implements expiry.SettingsRepository.
func (r *expirySettingsRepositoryImpl) Get(ctx context.Context, businessID string) (expiry.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT business_id, warning_days, critical_days, enabled, updated_at FROM expiry_settings WHERE business_id = ?`

	var s expiry.Settings
	var updatedAt int64
	err := q.QueryRowContext(ctx, query, businessID).Scan(&s.BusinessID, &s.WarningDays, &s.CriticalDays, &s.Enabled, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return expiry.DefaultSettings(businessID), nil
	}
	if err != nil {
		return expiry.Settings{}, err
	}
	s.UpdatedAt = fromUnix(updatedAt)
	return s, nil
}

// Upsert implements expiry.SettingsRepository.
func (r *expirySettingsRepositoryImpl) Upsert(ctx context.Context, s expiry.Settings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expiry_settings (business_id, warning_days, critical_days, enabled, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (business_id) DO UPDATE SET
			warning_days = excluded.warning_days,
			critical_days = excluded.critical_days,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`

	_, err := q.ExecContext(ctx, query, s.BusinessID, s.WarningDays, s.CriticalDays, s.Enabled, unix(s.UpdatedAt))
	return err
}
