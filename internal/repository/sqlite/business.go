package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/auraswift/pos-backend-go/internal/domain/business"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
)

type businessRepositoryImpl struct {
	db *database.DB
}

func NewBusinessRepository(db *database.DB) business.BusinessRepository {
	return &businessRepositoryImpl{db: db}
}

// Create implements business.BusinessRepository.
func (r *businessRepositoryImpl) Create(ctx context.Context, b business.Business) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO businesses (id, name, max_starting_cash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		b.ID,
		b.Name,
		decStr(b.MaxStartingCash),
		unix(b.CreatedAt),
		unix(b.UpdatedAt),
	)
	if err != nil {
		return business.Business{}, err
	}
	return b, nil
}

// GetByID implements business.BusinessRepository.
func (r *businessRepositoryImpl) GetByID(ctx context.Context, id string) (business.Business, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, max_starting_cash, created_at, updated_at FROM businesses WHERE id = ?`

	var b business.Business
	var maxCash string
	var createdAt, updatedAt int64
	err := q.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &maxCash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return business.Business{}, business.ErrBusinessNotFound
	}
	if err != nil {
		return business.Business{}, err
	}

	if b.MaxStartingCash, err = parseDec(maxCash); err != nil {
		return business.Business{}, err
	}
	b.CreatedAt = fromUnix(createdAt)
	b.UpdatedAt = fromUnix(updatedAt)
	return b, nil
}

// Update implements business.BusinessRepository.
func (r *businessRepositoryImpl) Update(ctx context.Context, b business.Business) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE businesses SET name = ?, max_starting_cash = ?, updated_at = ? WHERE id = ?`

	res, err := q.ExecContext(ctx, query, b.Name, decStr(b.MaxStartingCash), unix(b.UpdatedAt), b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}
