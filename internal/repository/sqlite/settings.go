package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/settings"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context, key string) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Setting
	var updatedAt int64
	err := q.QueryRowContext(ctx, `SELECT key, value, updated_at FROM settings WHERE key = ?`, key).Scan(&s.Key, &s.Value, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Setting{}, settings.ErrSettingNotFound
	}
	if err != nil {
		return settings.Setting{}, err
	}
	s.UpdatedAt = fromUnix(updatedAt)
	return s, nil
}

// Set implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Set(ctx context.Context, key string, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, unixepoch())
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := q.ExecContext(ctx, query, key, value)
	return err
}

// Delete implements settings.SettingsRepository. Deleting a missing key is a
// no-op; the companion marker row is the caller's concern.
func (r *settingsRepositoryImpl) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	return err
}
