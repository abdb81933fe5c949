package expiry

import "context"

type BatchRepository interface {
	Create(ctx context.Context, b Batch) (Batch, error)
	ListByBusiness(ctx context.Context, businessID string) ([]Batch, error)
	ListAllBusinessIDs(ctx context.Context) ([]string, error)
}

type NotificationRepository interface {
	// Upsert inserts the notification unless one already exists for the
	// same batch and level; returns true when a row was created.
	Upsert(ctx context.Context, n Notification) (bool, error)
	ListByBusiness(ctx context.Context, businessID string, status *NotificationStatus) ([]Notification, error)
	UpdateStatus(ctx context.Context, id string, businessID string, status NotificationStatus) error
}

type SettingsRepository interface {
	// Get falls back to DefaultSettings when no row exists.
	Get(ctx context.Context, businessID string) (Settings, error)
	Upsert(ctx context.Context, s Settings) error
}
