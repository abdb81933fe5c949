package auth

import (
	"context"
	"time"
)

// Session is a refresh-token row. Tokens are stored hashed.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	UserAgent string
	IPAddress string
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, s Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (Session, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	// DeleteExpired removes sessions whose expiry is before cutoff and
	// returns how many rows were purged.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
