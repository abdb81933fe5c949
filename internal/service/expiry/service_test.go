package expiry

import (
	"context"
	"testing"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/expiry"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expiryTestEnv struct {
	businessID string
	expirySvc  expiry.ExpiryService
}

func newExpiryTestEnv(t *testing.T) *expiryTestEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	expirySvc := NewExpiryService(
		sqlite.NewBatchRepository(db),
		sqlite.NewNotificationRepository(db),
		sqlite.NewExpirySettingsRepository(db),
	)

	return &expiryTestEnv{businessID: uuid.NewString(), expirySvc: expirySvc}
}

func (e *expiryTestEnv) addBatch(t *testing.T, ctx context.Context, name string, expiresIn time.Duration) expiry.Batch {
	t.Helper()
	created, err := e.expirySvc.CreateBatch(ctx, e.businessID, expiry.CreateBatchRequest{
		ProductName: name,
		BatchCode:   "B-001",
		Quantity:    12,
		ExpiryDate:  time.Now().Add(expiresIn).Unix(),
	})
	require.NoError(t, err)
	return created
}

func TestExpiryService_DefaultSettings(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)

	settings, err := env.expirySvc.GetSettings(ctx, env.businessID)
	require.NoError(t, err)
	assert.True(t, settings.Enabled)
	assert.Equal(t, 7, settings.WarningDays)
	assert.Equal(t, 2, settings.CriticalDays)
}

func TestExpiryService_Scan_Levels(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)

	// One batch per level, plus one too far out to alert on.
	env.addBatch(t, ctx, "yoghurt", -48*time.Hour)
	env.addBatch(t, ctx, "milk", 30*time.Hour)
	env.addBatch(t, ctx, "cheese", 5*24*time.Hour)
	env.addBatch(t, ctx, "tinned beans", 90*24*time.Hour)

	created, err := env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	notifications, err := env.expirySvc.ListNotifications(ctx, env.businessID, nil)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	levels := map[string]string{}
	for _, n := range notifications {
		levels[n.ProductName] = n.Level
		assert.Equal(t, string(expiry.StatusNew), n.Status)
	}
	assert.Equal(t, string(expiry.LevelExpired), levels["yoghurt"])
	assert.Equal(t, string(expiry.LevelCritical), levels["milk"])
	assert.Equal(t, string(expiry.LevelWarning), levels["cheese"])
}

func TestExpiryService_Scan_Idempotent(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)
	env.addBatch(t, ctx, "milk", 30*time.Hour)

	created, err := env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	notifications, err := env.expirySvc.ListNotifications(ctx, env.businessID, nil)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestExpiryService_Scan_Disabled(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)
	env.addBatch(t, ctx, "milk", 30*time.Hour)

	disabled := false
	_, err := env.expirySvc.UpdateSettings(ctx, env.businessID, expiry.UpdateSettingsRequest{Enabled: &disabled})
	require.NoError(t, err)

	created, err := env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestExpiryService_Scan_CustomThresholds(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)
	env.addBatch(t, ctx, "bread", 10*24*time.Hour)

	// Out of range under the defaults, in range after widening.
	created, err := env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	warning := 14
	_, err = env.expirySvc.UpdateSettings(ctx, env.businessID, expiry.UpdateSettingsRequest{WarningDays: &warning})
	require.NoError(t, err)

	created, err = env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestExpiryService_SetNotificationStatus(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)
	env.addBatch(t, ctx, "milk", 30*time.Hour)

	_, err := env.expirySvc.Scan(ctx, env.businessID)
	require.NoError(t, err)

	notifications, err := env.expirySvc.ListNotifications(ctx, env.businessID, nil)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, env.expirySvc.SetNotificationStatus(ctx, env.businessID, notifications[0].ID, expiry.StatusAcknowledged))

	acked := expiry.StatusAcknowledged
	filtered, err := env.expirySvc.ListNotifications(ctx, env.businessID, &acked)
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	fresh := expiry.StatusNew
	none, err := env.expirySvc.ListNotifications(ctx, env.businessID, &fresh)
	require.NoError(t, err)
	assert.Empty(t, none)

	err = env.expirySvc.SetNotificationStatus(ctx, env.businessID, uuid.NewString(), expiry.StatusDismissed)
	assert.ErrorIs(t, err, expiry.ErrNotificationNotFound)
}

func TestExpiryService_ScanAll(t *testing.T) {
	ctx := context.Background()
	env := newExpiryTestEnv(t)
	env.addBatch(t, ctx, "milk", 30*time.Hour)

	require.NoError(t, env.expirySvc.ScanAll(ctx))

	notifications, err := env.expirySvc.ListNotifications(ctx, env.businessID, nil)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}
