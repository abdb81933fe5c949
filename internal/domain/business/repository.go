package business

import "context"

type BusinessRepository interface {
	Create(ctx context.Context, b Business) (Business, error)
	GetByID(ctx context.Context, id string) (Business, error)
	Update(ctx context.Context, b Business) error
}
