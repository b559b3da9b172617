package memory

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository en memoria.
type CategoryRepo struct {
	table[entity.Category]
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func categoryTable(s *Store) table[entity.Category] {
	return table[entity.Category]{
		s:     s,
		name:  "category",
		rows:  func(st *state) map[int64]entity.Category { return st.categories },
		id:    func(e *entity.Category) int64 { return e.ID },
		setID: func(e *entity.Category, id int64) { e.ID = id },
		check: func(st *state, e *entity.Category) error {
			for _, c := range st.categories {
				if c.Name == e.Name {
					return duplicate("name")
				}
			}
			return nil
		},
		delete: cascadeCategory,
	}
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.first(ctx, func(c *entity.Category) bool { return c.Name == name })
}

// StoreRepo implementa repository.StoreRepository en memoria.
type StoreRepo struct {
	table[entity.Store]
}

var _ repository.StoreRepository = (*StoreRepo)(nil)

func storeTable(s *Store) table[entity.Store] {
	return table[entity.Store]{
		s:     s,
		name:  "store",
		rows:  func(st *state) map[int64]entity.Store { return st.stores },
		id:    func(e *entity.Store) int64 { return e.ID },
		setID: func(e *entity.Store, id int64) { e.ID = id },
		check: func(st *state, e *entity.Store) error {
			if e.SellerID != nil {
				if _, ok := st.sellers[*e.SellerID]; !ok {
					return missing("seller_id")
				}
			}
			for _, s := range st.stores {
				if s.Name == e.Name {
					return duplicate("name")
				}
			}
			return nil
		},
		delete: cascadeStore,
	}
}

// GetBySellerID devuelve la tienda de menor id del vendedor, o nil.
func (r *StoreRepo) GetBySellerID(ctx context.Context, sellerID int64) (*entity.Store, error) {
	return r.first(ctx, func(s *entity.Store) bool { return s.SellerID != nil && *s.SellerID == sellerID })
}

// ProductRepo implementa repository.ProductRepository en memoria.
type ProductRepo struct {
	table[entity.Product]
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func productTable(s *Store) table[entity.Product] {
	return table[entity.Product]{
		s:     s,
		name:  "product",
		rows:  func(st *state) map[int64]entity.Product { return st.products },
		id:    func(e *entity.Product) int64 { return e.ID },
		setID: func(e *entity.Product, id int64) { e.ID = id },
		check: func(st *state, e *entity.Product) error {
			if _, ok := st.stores[e.StoreID]; !ok {
				return missing("store_id")
			}
			if e.CategoryID != nil {
				if _, ok := st.categories[*e.CategoryID]; !ok {
					return missing("category_id")
				}
			}
			return nil
		},
		delete: cascadeProduct,
	}
}

func (r *ProductRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	return r.filter(ctx, func(p *entity.Product) bool { return p.StoreID == storeID })
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.filter(ctx, func(p *entity.Product) bool {
		return p.CategoryID != nil && *p.CategoryID == categoryID
	})
}
