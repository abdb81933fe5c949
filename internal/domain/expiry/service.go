package expiry

import "context"

type ExpiryService interface {
	CreateBatch(ctx context.Context, businessID string, req CreateBatchRequest) (Batch, error)
	// Scan walks a business's batches against its thresholds and creates
	// missing notifications; returns how many were created.
	Scan(ctx context.Context, businessID string) (int, error)
	// ScanAll runs Scan for every business with batches; used by cron.
	ScanAll(ctx context.Context) error
	ListNotifications(ctx context.Context, businessID string, status *NotificationStatus) ([]NotificationResponse, error)
	SetNotificationStatus(ctx context.Context, businessID string, id string, status NotificationStatus) error
	GetSettings(ctx context.Context, businessID string) (Settings, error)
	UpdateSettings(ctx context.Context, businessID string, req UpdateSettingsRequest) (Settings, error)
}
