package repository

import "context"

// Repository contrato CRUD común a todas las entidades.
// GetByID devuelve (nil, nil) si no existe; DeleteByID devuelve domain.ErrNotFound.
type Repository[T any] interface {
	Create(ctx context.Context, e *T) error
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	DeleteByID(ctx context.Context, id int64) error
}
