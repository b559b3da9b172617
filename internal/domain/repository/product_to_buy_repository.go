package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductToBuyRepository define el puerto de persistencia del carrito.
type ProductToBuyRepository interface {
	Repository[entity.ProductToBuy]
	ListByBuyer(ctx context.Context, buyerID int64) ([]*entity.ProductToBuy, error)
	// UpdateQuantity devuelve domain.ErrNotFound si la línea no existe.
	UpdateQuantity(ctx context.Context, id, quantity int64) error
}
