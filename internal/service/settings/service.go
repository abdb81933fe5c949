package settings

import (
	"context"
	"fmt"

	"github.com/auraswift/pos-backend-go/internal/domain/settings"
	"github.com/auraswift/pos-backend-go/internal/pkg/secure"
)

type settingsServiceImpl struct {
	repo  settings.SettingsRepository
	codec *secure.Codec
}

// NewSettingsService builds the store. codec may be nil when no encryption
// key is configured; encrypted writes are then refused.
func NewSettingsService(repo settings.SettingsRepository, codec *secure.Codec) settings.SettingsService {
	return &settingsServiceImpl{repo: repo, codec: codec}
}

// Get implements settings.SettingsService. A companion "<key>_encrypted"
// marker row tells the store the value needs unsealing before return.
func (s *settingsServiceImpl) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.Get(ctx, key+settings.EncryptedMarkerSuffix); err != nil {
		return setting.Value, nil
	}

	if s.codec == nil {
		return "", settings.ErrEncryptionNotConfigured
	}
	plain, err := s.codec.Decrypt(setting.Value)
	if err != nil {
		return "", fmt.Errorf("decrypt setting %s: %w", key, err)
	}
	return plain, nil
}

// Set implements settings.SettingsService.
func (s *settingsServiceImpl) Set(ctx context.Context, key string, value string, encrypt bool) error {
	if !encrypt {
		// A plain write over a previously encrypted key clears the marker.
		if err := s.repo.Delete(ctx, key+settings.EncryptedMarkerSuffix); err != nil {
			return err
		}
		return s.repo.Set(ctx, key, value)
	}

	if s.codec == nil {
		return settings.ErrEncryptionNotConfigured
	}
	sealed, err := s.codec.Encrypt(value)
	if err != nil {
		return fmt.Errorf("encrypt setting %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, sealed); err != nil {
		return err
	}
	return s.repo.Set(ctx, key+settings.EncryptedMarkerSuffix, "1")
}

// Delete implements settings.SettingsService.
func (s *settingsServiceImpl) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key+settings.EncryptedMarkerSuffix); err != nil {
		return err
	}
	return s.repo.Delete(ctx, key)
}
