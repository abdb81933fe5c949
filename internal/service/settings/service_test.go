package settings

import (
	"context"
	"testing"

	"github.com/auraswift/pos-backend-go/internal/domain/settings"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/pkg/secure"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func newSettingsTestEnv(t *testing.T, withCodec bool) (settings.SettingsService, settings.SettingsRepository) {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	var codec *secure.Codec
	if withCodec {
		codec, err = secure.NewCodec(testKeyHex)
		require.NoError(t, err)
	}
	return NewSettingsService(repo, codec), repo
}

func TestSettingsService_PlainRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSettingsTestEnv(t, true)

	require.NoError(t, svc.Set(ctx, "receipt_footer", "Thanks for shopping!", false))

	value, err := svc.Get(ctx, "receipt_footer")
	require.NoError(t, err)
	assert.Equal(t, "Thanks for shopping!", value)
}

func TestSettingsService_EncryptedRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingsTestEnv(t, true)

	require.NoError(t, svc.Set(ctx, "payment_api_token", "sk-secret-token", true))

	// The stored value must be ciphertext with its marker row alongside.
	stored, err := repo.Get(ctx, "payment_api_token")
	require.NoError(t, err)
	assert.NotEqual(t, "sk-secret-token", stored.Value)

	marker, err := repo.Get(ctx, "payment_api_token"+settings.EncryptedMarkerSuffix)
	require.NoError(t, err)
	assert.Equal(t, "1", marker.Value)

	value, err := svc.Get(ctx, "payment_api_token")
	require.NoError(t, err)
	assert.Equal(t, "sk-secret-token", value)
}

func TestSettingsService_PlainOverwriteClearsMarker(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingsTestEnv(t, true)

	require.NoError(t, svc.Set(ctx, "payment_api_token", "sk-secret-token", true))
	require.NoError(t, svc.Set(ctx, "payment_api_token", "plain-now", false))

	_, err := repo.Get(ctx, "payment_api_token"+settings.EncryptedMarkerSuffix)
	assert.ErrorIs(t, err, settings.ErrSettingNotFound)

	value, err := svc.Get(ctx, "payment_api_token")
	require.NoError(t, err)
	assert.Equal(t, "plain-now", value)
}

func TestSettingsService_EncryptWithoutKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSettingsTestEnv(t, false)

	err := svc.Set(ctx, "payment_api_token", "sk-secret-token", true)
	assert.ErrorIs(t, err, settings.ErrEncryptionNotConfigured)
}

func TestSettingsService_GetEncryptedWithoutKey(t *testing.T) {
	ctx := context.Background()
	withKey, repo := newSettingsTestEnv(t, true)
	require.NoError(t, withKey.Set(ctx, "payment_api_token", "sk-secret-token", true))

	// Same rows read back through a store with no key configured.
	withoutKey := NewSettingsService(repo, nil)
	_, err := withoutKey.Get(ctx, "payment_api_token")
	assert.ErrorIs(t, err, settings.ErrEncryptionNotConfigured)
}

func TestSettingsService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingsTestEnv(t, true)

	require.NoError(t, svc.Set(ctx, "payment_api_token", "sk-secret-token", true))
	require.NoError(t, svc.Delete(ctx, "payment_api_token"))

	_, err := svc.Get(ctx, "payment_api_token")
	assert.ErrorIs(t, err, settings.ErrSettingNotFound)

	_, err = repo.Get(ctx, "payment_api_token"+settings.EncryptedMarkerSuffix)
	assert.ErrorIs(t, err, settings.ErrSettingNotFound)
}

func TestSettingsService_GetMissing(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSettingsTestEnv(t, true)

	_, err := svc.Get(ctx, "no-such-key")
	assert.ErrorIs(t, err, settings.ErrSettingNotFound)
}
