package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CategoryRepo implementa repository.CategoryRepository.
type CategoryRepo struct {
	table[entity.Category]
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{table[entity.Category]{
		q:       q,
		name:    "category",
		columns: []string{"name"},
		scan: func(row pgx.Row) (*entity.Category, error) {
			var c entity.Category
			if err := row.Scan(&c.ID, &c.Name); err != nil {
				return nil, err
			}
			return &c, nil
		},
		values: func(c *entity.Category) []any { return []any{c.Name} },
		setID:  func(c *entity.Category, id int64) { c.ID = id },
	}}
}

func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.first(ctx, "name = $1", name)
}

// StoreRepo implementa repository.StoreRepository.
type StoreRepo struct {
	table[entity.Store]
}

var _ repository.StoreRepository = (*StoreRepo)(nil)

func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{table[entity.Store]{
		q:       q,
		name:    "store",
		columns: []string{"name", "description", "seller_id"},
		scan: func(row pgx.Row) (*entity.Store, error) {
			var s entity.Store
			if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.SellerID); err != nil {
				return nil, err
			}
			return &s, nil
		},
		values: func(s *entity.Store) []any { return []any{s.Name, s.Description, s.SellerID} },
		setID:  func(s *entity.Store, id int64) { s.ID = id },
	}}
}

// GetBySellerID devuelve la tienda de menor id del vendedor, o nil.
func (r *StoreRepo) GetBySellerID(ctx context.Context, sellerID int64) (*entity.Store, error) {
	return r.first(ctx, "seller_id = $1", sellerID)
}

// ProductRepo implementa repository.ProductRepository. price usa el codec NUMERIC de pgxdecimal.
type ProductRepo struct {
	table[entity.Product]
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{table[entity.Product]{
		q:    q,
		name: "product",
		columns: []string{
			"name", "description", "price", "amount_available", "active", "img_url", "category_id", "store_id",
		},
		scan: func(row pgx.Row) (*entity.Product, error) {
			var p entity.Product
			err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.AmountAvailable,
				&p.Active, &p.ImgURL, &p.CategoryID, &p.StoreID)
			if err != nil {
				return nil, err
			}
			return &p, nil
		},
		values: func(p *entity.Product) []any {
			return []any{p.Name, p.Description, p.Price, p.AmountAvailable, p.Active, p.ImgURL, p.CategoryID, p.StoreID}
		},
		setID: func(p *entity.Product, id int64) { p.ID = id },
	}}
}

func (r *ProductRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	return r.list(ctx, "store_id = $1", storeID)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.list(ctx, "category_id = $1", categoryID)
}
