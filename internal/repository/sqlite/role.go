package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

const roleColumns = `id, business_id, name, description, permissions, requires_pos_shift, is_system, created_at, updated_at`

func scanRole(row interface{ Scan(...any) error }) (role.Role, error) {
	var r role.Role
	var permissions string
	var createdAt, updatedAt int64
	err := row.Scan(
		&r.ID,
		&r.BusinessID,
		&r.Name,
		&r.Description,
		&permissions,
		&r.RequiresPOSShift,
		&r.IsSystem,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return role.Role{}, err
	}
	if err := json.Unmarshal([]byte(permissions), &r.Permissions); err != nil {
		return role.Role{}, err
	}
	r.CreatedAt = fromUnix(createdAt)
	r.UpdatedAt = fromUnix(updatedAt)
	return r, nil
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	permissions, err := json.Marshal(newRole.Permissions)
	if err != nil {
		return role.Role{}, err
	}

	query := `
		INSERT INTO roles (id, business_id, name, description, permissions, requires_pos_shift, is_system, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = q.ExecContext(ctx, query,
		newRole.ID,
		newRole.BusinessID,
		newRole.Name,
		newRole.Description,
		string(permissions),
		newRole.RequiresPOSShift,
		newRole.IsSystem,
		unix(newRole.CreatedAt),
		unix(newRole.UpdatedAt),
	)
	if err != nil {
		return role.Role{}, err
	}
	return newRole, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string, businessID string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = ? AND business_id = ?`

	found, err := scanRole(q.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}
	return found, err
}

// GetByName implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByName(ctx context.Context, businessID string, name string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM roles WHERE business_id = ? AND name = ? COLLATE NOCASE`

	found, err := scanRole(q.QueryRowContext(ctx, query, businessID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return role.Role{}, role.ErrRoleNotFound
	}
	return found, err
}

// ListByBusiness implements role.RoleRepository.
func (r *roleRepositoryImpl) ListByBusiness(ctx context.Context, businessID string) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + roleColumns + ` FROM roles WHERE business_id = ? ORDER BY is_system DESC, name`

	rows, err := q.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		found, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, found)
	}
	return roles, rows.Err()
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, updated role.Role) error {
	q := GetQuerier(ctx, r.db)

	permissions, err := json.Marshal(updated.Permissions)
	if err != nil {
		return err
	}

	query := `
		UPDATE roles
		SET name = ?, description = ?, permissions = ?, requires_pos_shift = ?, updated_at = ?
		WHERE id = ? AND business_id = ?
	`

	res, err := q.ExecContext(ctx, query,
		updated.Name,
		updated.Description,
		string(permissions),
		updated.RequiresPOSShift,
		unix(updated.UpdatedAt),
		updated.ID,
		updated.BusinessID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string, businessID string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM roles WHERE id = ? AND business_id = ?`, id, businessID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

// CountAssignments implements role.RoleRepository.
func (r *roleRepositoryImpl) CountAssignments(ctx context.Context, roleID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM user_roles WHERE role_id = ? AND is_active = 1`, roleID).Scan(&count)
	return count, err
}
