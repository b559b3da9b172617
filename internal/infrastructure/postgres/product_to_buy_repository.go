package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductToBuyRepo implementa repository.ProductToBuyRepository.
type ProductToBuyRepo struct {
	table[entity.ProductToBuy]
}

var _ repository.ProductToBuyRepository = (*ProductToBuyRepo)(nil)

func NewProductToBuyRepository(q Querier) *ProductToBuyRepo {
	return &ProductToBuyRepo{table[entity.ProductToBuy]{
		q:       q,
		name:    "product_to_buy",
		columns: []string{"buyer_id", "product_id", "quantity"},
		scan: func(row pgx.Row) (*entity.ProductToBuy, error) {
			var l entity.ProductToBuy
			if err := row.Scan(&l.ID, &l.BuyerID, &l.ProductID, &l.Quantity); err != nil {
				return nil, err
			}
			return &l, nil
		},
		values: func(l *entity.ProductToBuy) []any { return []any{l.BuyerID, l.ProductID, l.Quantity} },
		setID:  func(l *entity.ProductToBuy, id int64) { l.ID = id },
	}}
}

func (r *ProductToBuyRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]*entity.ProductToBuy, error) {
	return r.list(ctx, "buyer_id = $1", buyerID)
}

func (r *ProductToBuyRepo) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	tag, err := r.q.Exec(ctx, "UPDATE product_to_buy SET quantity = $2 WHERE id = $1", id, quantity)
	if err != nil {
		return mapError("update product_to_buy", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product_to_buy %d", domain.ErrNotFound, id)
	}
	return nil
}
