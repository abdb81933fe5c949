package sqlite

import (
	"context"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type userRoleRepositoryImpl struct {
	db *database.DB
}

func NewUserRoleRepository(db *database.DB) role.UserRoleRepository {
	return &userRoleRepositoryImpl{db: db}
}

// Assign implements role.UserRoleRepository. Re-assigning an existing
// user/role pair reactivates the old row instead of inserting a duplicate.
func (r *userRoleRepositoryImpl) Assign(ctx context.Context, ur role.UserRole) (role.UserRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_roles (id, user_id, role_id, assigned_by, is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT (user_id, role_id) DO UPDATE SET is_active = 1, assigned_by = excluded.assigned_by
	`

	_, err := q.ExecContext(ctx, query, ur.ID, ur.UserID, ur.RoleID, ur.AssignedBy, unix(ur.CreatedAt))
	if err != nil {
		return role.UserRole{}, err
	}
	ur.IsActive = true
	return ur, nil
}

// Revoke implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) Revoke(ctx context.Context, userID string, roleID string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `UPDATE user_roles SET is_active = 0 WHERE user_id = ? AND role_id = ? AND is_active = 1`, userID, roleID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return role.ErrAssignmentNotFound
	}
	return nil
}

// ListByUser implements role.UserRoleRepository.
func (r *userRoleRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]role.UserRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ur.id, ur.user_id, ur.role_id, ur.assigned_by, ur.is_active, ur.created_at, r.name
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = ? AND ur.is_active = 1
		ORDER BY ur.created_at
	`

	rows, err := q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []role.UserRole
	for rows.Next() {
		var ur role.UserRole
		var createdAt int64
		var roleName string
		if err := rows.Scan(&ur.ID, &ur.UserID, &ur.RoleID, &ur.AssignedBy, &ur.IsActive, &createdAt, &roleName); err != nil {
			return nil, err
		}
		ur.CreatedAt = fromUnix(createdAt)
		ur.RoleName = &roleName
		assignments = append(assignments, ur)
	}
	return assignments, rows.Err()
}
