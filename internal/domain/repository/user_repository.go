package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// DeleteByID elimina en cascada Buyer y Seller.
type UserRepository interface {
	Repository[entity.User]
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

// BuyerRepository define el puerto de persistencia para Buyer.
type BuyerRepository interface {
	Repository[entity.Buyer]
	GetByUserID(ctx context.Context, userID int64) (*entity.Buyer, error)
}

// SellerRepository define el puerto de persistencia para Seller.
type SellerRepository interface {
	Repository[entity.Seller]
	GetByUserID(ctx context.Context, userID int64) (*entity.Seller, error)
}
