package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/expiry"
	"github.com/google/uuid"
)

type expiryServiceImpl struct {
	batchRepo        expiry.BatchRepository
	notificationRepo expiry.NotificationRepository
	settingsRepo     expiry.SettingsRepository
}

func NewExpiryService(
	batchRepo expiry.BatchRepository,
	notificationRepo expiry.NotificationRepository,
	settingsRepo expiry.SettingsRepository,
) expiry.ExpiryService {
	return &expiryServiceImpl{
		batchRepo:        batchRepo,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
	}
}

// CreateBatch implements expiry.ExpiryService.
func (s *expiryServiceImpl) CreateBatch(ctx context.Context, businessID string, req expiry.CreateBatchRequest) (expiry.Batch, error) {
	if err := req.Validate(); err != nil {
		return expiry.Batch{}, err
	}

	return s.batchRepo.Create(ctx, expiry.Batch{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		ProductName: req.ProductName,
		BatchCode:   req.BatchCode,
		Quantity:    req.Quantity,
		ExpiryDate:  time.Unix(req.ExpiryDate, 0),
		CreatedAt:   time.Now(),
	})
}

// Scan implements expiry.ExpiryService. Each batch raises at most one
// notification per level, so repeated scans are idempotent.
func (s *expiryServiceImpl) Scan(ctx context.Context, businessID string) (int, error) {
	settings, err := s.settingsRepo.Get(ctx, businessID)
	if err != nil {
		return 0, fmt.Errorf("load expiry settings: %w", err)
	}
	if !settings.Enabled {
		return 0, nil
	}

	batches, err := s.batchRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return 0, fmt.Errorf("list batches: %w", err)
	}

	now := time.Now()
	created := 0
	for _, batch := range batches {
		days := daysUntil(now, batch.ExpiryDate)
		level, ok := levelFor(days, settings)
		if !ok {
			continue
		}

		wasNew, err := s.notificationRepo.Upsert(ctx, expiry.Notification{
			ID:              uuid.NewString(),
			BusinessID:      businessID,
			BatchID:         batch.ID,
			ProductName:     batch.ProductName,
			ExpiryDate:      batch.ExpiryDate,
			DaysUntilExpiry: days,
			Level:           level,
			Status:          expiry.StatusNew,
			CreatedAt:       now,
		})
		if err != nil {
			return created, fmt.Errorf("upsert notification for batch %s: %w", batch.ID, err)
		}
		if wasNew {
			created++
		}
	}
	return created, nil
}

// ScanAll implements expiry.ExpiryService.
func (s *expiryServiceImpl) ScanAll(ctx context.Context) error {
	businessIDs, err := s.batchRepo.ListAllBusinessIDs(ctx)
	if err != nil {
		return fmt.Errorf("list businesses with batches: %w", err)
	}

	for _, businessID := range businessIDs {
		created, err := s.Scan(ctx, businessID)
		if err != nil {
			slog.Error("expiry scan failed", "business_id", businessID, "error", err)
			continue
		}
		if created > 0 {
			slog.Info("expiry scan raised notifications", "business_id", businessID, "created", created)
		}
	}
	return nil
}

// ListNotifications implements expiry.ExpiryService.
func (s *expiryServiceImpl) ListNotifications(ctx context.Context, businessID string, status *expiry.NotificationStatus) ([]expiry.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListByBusiness(ctx, businessID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]expiry.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, expiry.ToNotificationResponse(n))
	}
	return responses, nil
}

// SetNotificationStatus implements expiry.ExpiryService.
func (s *expiryServiceImpl) SetNotificationStatus(ctx context.Context, businessID string, id string, status expiry.NotificationStatus) error {
	return s.notificationRepo.UpdateStatus(ctx, id, businessID, status)
}

// GetSettings implements expiry.ExpiryService.
func (s *expiryServiceImpl) GetSettings(ctx context.Context, businessID string) (expiry.Settings, error) {
	return s.settingsRepo.Get(ctx, businessID)
}

// UpdateSettings implements expiry.ExpiryService.
func (s *expiryServiceImpl) UpdateSettings(ctx context.Context, businessID string, req expiry.UpdateSettingsRequest) (expiry.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx, businessID)
	if err != nil {
		return expiry.Settings{}, err
	}

	if req.WarningDays != nil {
		settings.WarningDays = *req.WarningDays
	}
	if req.CriticalDays != nil {
		settings.CriticalDays = *req.CriticalDays
	}
	if req.Enabled != nil {
		settings.Enabled = *req.Enabled
	}
	settings.UpdatedAt = time.Now()

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return expiry.Settings{}, err
	}
	return settings, nil
}

// daysUntil counts whole calendar days from now to the expiry date, negative
// once past.
func daysUntil(now, expiryDate time.Time) int {
	return int(expiryDate.Sub(now).Hours() / 24)
}

func levelFor(days int, settings expiry.Settings) (expiry.Level, bool) {
	switch {
	case days < 0:
		return expiry.LevelExpired, true
	case days <= settings.CriticalDays:
		return expiry.LevelCritical, true
	case days <= settings.WarningDays:
		return expiry.LevelWarning, true
	default:
		return "", false
	}
}
