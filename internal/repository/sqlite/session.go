package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/auth"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements auth.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s auth.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sessions (id, user_id, token_hash, expires_at, revoked_at, user_agent, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.TokenHash,
		unix(s.ExpiresAt),
		unixPtr(s.RevokedAt),
		s.UserAgent,
		s.IPAddress,
		unix(s.CreatedAt),
	)
	return err
}

// GetByTokenHash implements auth.SessionRepository.
func (r *sessionRepositoryImpl) GetByTokenHash(ctx context.Context, tokenHash string) (auth.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token_hash, expires_at, revoked_at, user_agent, ip_address, created_at
		FROM sessions
		WHERE token_hash = ?
	`

	var s auth.Session
	var expiresAt, createdAt int64
	var revokedAt sql.NullInt64
	err := q.QueryRowContext(ctx, query, tokenHash).Scan(
		&s.ID,
		&s.UserID,
		&s.TokenHash,
		&expiresAt,
		&revokedAt,
		&s.UserAgent,
		&s.IPAddress,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Session{}, auth.ErrInvalidSession
	}
	if err != nil {
		return auth.Session{}, err
	}

	s.ExpiresAt = fromUnix(expiresAt)
	s.RevokedAt = fromNullUnix(revokedAt)
	s.CreatedAt = fromUnix(createdAt)
	return s, nil
}

// RevokeByTokenHash implements auth.SessionRepository.
func (r *sessionRepositoryImpl) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE sessions SET revoked_at = ? WHERE token_hash = ? AND revoked_at IS NULL`

	_, err := q.ExecContext(ctx, query, time.Now().Unix(), tokenHash)
	return err
}

// RevokeAllForUser implements auth.SessionRepository.
func (r *sessionRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE sessions SET revoked_at = ? WHERE user_id = ? AND revoked_at IS NULL`

	_, err := q.ExecContext(ctx, query, time.Now().Unix(), userID)
	return err
}

// DeleteExpired implements auth.SessionRepository.
func (r *sessionRepositoryImpl) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ? OR revoked_at IS NOT NULL`, unix(cutoff))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
