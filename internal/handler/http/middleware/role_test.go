package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/handler/http/response"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	rbacService "github.com/auraswift/pos-backend-go/internal/service/rbac"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permissionTestEnv struct {
	businessID string
	userID     string
	rbacSvc    role.RBACService
}

func newPermissionTestEnv(t *testing.T) *permissionTestEnv {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	roleRepo := sqlite.NewRoleRepository(db)
	userRoleRepo := sqlite.NewUserRoleRepository(db)
	userPermissionRepo := sqlite.NewUserPermissionRepository(db)

	businessID := uuid.NewString()
	now := time.Now()
	staff, err := userRepo.Create(ctx, user.User{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Email:      "staff@example.com",
		Role:       user.RoleCashier,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	return &permissionTestEnv{
		businessID: businessID,
		userID:     staff.ID,
		rbacSvc:    rbacService.NewRBACService(roleRepo, userRoleRepo, userPermissionRepo, userRepo),
	}
}

func (e *permissionTestEnv) request(identity Identity) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/shifts/transactions", nil)
	ctx := context.WithValue(req.Context(), identityKey{}, identity)
	return req.WithContext(ctx)
}

func TestRequirePermission_DeniesWithoutGrant(t *testing.T) {
	env := newPermissionTestEnv(t)

	var called bool
	handler := RequirePermission(env.rbacSvc, role.PermPOSSale)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, env.request(Identity{
		UserID:     env.userID,
		BusinessID: env.businessID,
		Role:       string(user.RoleCashier),
	}))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), response.CodeForbidden)
}

func TestRequirePermission_AllowsDirectGrant(t *testing.T) {
	ctx := context.Background()
	env := newPermissionTestEnv(t)

	require.NoError(t, env.rbacSvc.GrantPermission(ctx, env.businessID, env.userID, role.GrantPermissionRequest{
		UserID:     env.userID,
		Permission: role.PermPOSSale,
	}))

	var called bool
	handler := RequirePermission(env.rbacSvc, role.PermPOSSale)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, env.request(Identity{
		UserID:     env.userID,
		BusinessID: env.businessID,
		Role:       string(user.RoleCashier),
	}))

	assert.True(t, called)
}

func TestRequirePermission_DeniesAnonymous(t *testing.T) {
	env := newPermissionTestEnv(t)

	handler := RequirePermission(env.rbacSvc, role.PermPOSSale)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { t.Fatal("handler must not run") }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shifts/transactions", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
