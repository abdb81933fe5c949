package maintenance

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/business"
	"github.com/auraswift/pos-backend-go/internal/domain/maintenance"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMaintenanceTestEnv(t *testing.T) (*database.DB, maintenance.MaintenanceService) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pos.db")
	db, err := database.NewSQLiteDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, NewMaintenanceService(db)
}

func setOrigin(t *testing.T, ctx context.Context, db *database.DB, value string) {
	t.Helper()
	require.NoError(t, sqlite.NewSettingsRepository(db).Set(ctx, "origin", value))
}

func getOrigin(t *testing.T, ctx context.Context, db *database.DB) string {
	t.Helper()
	setting, err := sqlite.NewSettingsRepository(db).Get(ctx, "origin")
	require.NoError(t, err)
	return setting.Value
}

// seedAccount gives a database the one user row import validation insists on.
func seedAccount(t *testing.T, ctx context.Context, db *database.DB, email string) {
	t.Helper()
	now := time.Now()
	biz, err := sqlite.NewBusinessRepository(db).Create(ctx, business.Business{
		ID:              uuid.NewString(),
		Name:            "Corner Shop",
		MaxStartingCash: decimal.NewFromInt(500),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)

	_, err = sqlite.NewUserRepository(db).Create(ctx, user.User{
		ID:           uuid.NewString(),
		BusinessID:   biz.ID,
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Owner",
		Role:         user.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
}

func TestMaintenanceService_GetInfo(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	info, err := svc.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, db.Path(), info.Path)
	assert.Greater(t, info.SizeBytes, int64(0))
	assert.Greater(t, info.TableCount, 0)
	assert.Contains(t, info.TableRows, "settings")
	assert.Equal(t, int64(1), info.TableRows["settings"])
	assert.GreaterOrEqual(t, info.TotalRows, int64(1))
}

func TestMaintenanceService_Backup(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	dest := filepath.Join(t.TempDir(), "backup.db")
	result, err := svc.Backup(ctx, maintenance.BackupRequest{DestinationPath: dest})
	require.NoError(t, err)
	assert.Equal(t, dest, result.BackupPath)

	// The copy must be a usable database holding the same data.
	restored, err := database.NewSQLiteDB(dest)
	require.NoError(t, err)
	defer restored.Close()
	assert.Equal(t, "live", getOrigin(t, ctx, restored))
}

func TestMaintenanceService_Backup_NoDestination(t *testing.T) {
	ctx := context.Background()
	_, svc := newMaintenanceTestEnv(t)

	_, err := svc.Backup(ctx, maintenance.BackupRequest{})
	assert.ErrorIs(t, err, maintenance.ErrBackupFailed)
}

func TestMaintenanceService_Empty(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	result, err := svc.Empty(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.RowsDeleted, int64(1))

	// A safety backup was written before the wipe.
	_, err = os.Stat(result.BackupPath)
	require.NoError(t, err)

	info, err := svc.GetInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.TotalRows)
}

func TestMaintenanceService_Import_RejectsGarbageFile(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	garbage := filepath.Join(t.TempDir(), "garbage.db")
	require.NoError(t, os.WriteFile(garbage, []byte("this is not a database"), 0o644))

	err := svc.Import(ctx, maintenance.ImportRequest{SourcePath: garbage})
	var importErr *maintenance.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, maintenance.StepValidate, importErr.Step)

	// The live database is untouched.
	assert.Equal(t, "live", getOrigin(t, ctx, db))
}

func TestMaintenanceService_Import_RejectsMissingFile(t *testing.T) {
	ctx := context.Background()
	_, svc := newMaintenanceTestEnv(t)

	err := svc.Import(ctx, maintenance.ImportRequest{SourcePath: filepath.Join(t.TempDir(), "nope.db")})
	var importErr *maintenance.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, maintenance.StepValidate, importErr.Step)
}

func TestMaintenanceService_Import_RejectsDatabaseWithoutUsers(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	// Schema is fine, but an empty users table would lock everyone out.
	sourcePath := filepath.Join(t.TempDir(), "source.db")
	source, err := database.NewSQLiteDB(sourcePath)
	require.NoError(t, err)
	require.NoError(t, source.Close())

	err = svc.Import(ctx, maintenance.ImportRequest{SourcePath: sourcePath})
	var importErr *maintenance.ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, maintenance.StepValidate, importErr.Step)
	assert.Equal(t, "live", getOrigin(t, ctx, db))
}

func TestMaintenanceService_Import_SwapsDatabase(t *testing.T) {
	ctx := context.Background()
	db, svc := newMaintenanceTestEnv(t)
	setOrigin(t, ctx, db, "live")

	// Build a valid source database with its own account and data.
	sourcePath := filepath.Join(t.TempDir(), "source.db")
	source, err := database.NewSQLiteDB(sourcePath)
	require.NoError(t, err)
	seedAccount(t, ctx, source, "owner@example.com")
	setOrigin(t, ctx, source, "imported")
	require.NoError(t, source.Close())

	require.NoError(t, svc.Import(ctx, maintenance.ImportRequest{SourcePath: sourcePath}))

	assert.Equal(t, "imported", getOrigin(t, ctx, db))
}
