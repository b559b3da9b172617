package memory

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductToBuyRepo implementa repository.ProductToBuyRepository en memoria.
type ProductToBuyRepo struct {
	table[entity.ProductToBuy]
}

var _ repository.ProductToBuyRepository = (*ProductToBuyRepo)(nil)

func productToBuyTable(s *Store) table[entity.ProductToBuy] {
	return table[entity.ProductToBuy]{
		s:     s,
		name:  "product_to_buy",
		rows:  func(st *state) map[int64]entity.ProductToBuy { return st.cart },
		id:    func(e *entity.ProductToBuy) int64 { return e.ID },
		setID: func(e *entity.ProductToBuy, id int64) { e.ID = id },
		check: func(st *state, e *entity.ProductToBuy) error {
			if _, ok := st.buyers[e.BuyerID]; !ok {
				return missing("buyer_id")
			}
			if _, ok := st.products[e.ProductID]; !ok {
				return missing("product_id")
			}
			return nil
		},
	}
}

func (r *ProductToBuyRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]*entity.ProductToBuy, error) {
	return r.filter(ctx, func(l *entity.ProductToBuy) bool { return l.BuyerID == buyerID })
}

func (r *ProductToBuyRepo) UpdateQuantity(ctx context.Context, id, quantity int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.lock()()
	l, ok := r.s.st.cart[id]
	if !ok {
		return missing("product_to_buy")
	}
	l.Quantity = quantity
	r.s.st.cart[id] = l
	return nil
}
