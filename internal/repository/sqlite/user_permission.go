package sqlite

import (
	"context"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type userPermissionRepositoryImpl struct {
	db *database.DB
}

func NewUserPermissionRepository(db *database.DB) role.UserPermissionRepository {
	return &userPermissionRepositoryImpl{db: db}
}

// Grant implements role.UserPermissionRepository. Granting twice is a no-op.
func (r *userPermissionRepositoryImpl) Grant(ctx context.Context, up role.UserPermission) (role.UserPermission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_permissions (id, user_id, permission, granted_by, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, permission) DO NOTHING
	`

	_, err := q.ExecContext(ctx, query, up.ID, up.UserID, up.Permission, up.GrantedBy, unix(up.CreatedAt))
	if err != nil {
		return role.UserPermission{}, err
	}
	return up, nil
}

// Revoke implements role.UserPermissionRepository.
func (r *userPermissionRepositoryImpl) Revoke(ctx context.Context, userID string, permission string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM user_permissions WHERE user_id = ? AND permission = ?`, userID, permission)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return role.ErrPermissionNotFound
	}
	return nil
}

// ListByUser implements role.UserPermissionRepository.
func (r *userPermissionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]role.UserPermission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, permission, granted_by, created_at
		FROM user_permissions
		WHERE user_id = ?
		ORDER BY created_at
	`

	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []role.UserPermission
	for rows.Next() {
		var up role.UserPermission
		var createdAt int64
		if err := rows.Scan(&up.ID, &up.UserID, &up.Permission, &up.GrantedBy, &createdAt); err != nil {
			return nil, err
		}
		up.CreatedAt = fromUnix(createdAt)
		grants = append(grants, up)
	}
	return grants, rows.Err()
}
