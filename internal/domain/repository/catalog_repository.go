package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Repository[entity.Category]
	GetByName(ctx context.Context, name string) (*entity.Category, error)
}

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Repository[entity.Store]
	GetBySellerID(ctx context.Context, sellerID int64) (*entity.Store, error)
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Repository[entity.Product]
	ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)
}
