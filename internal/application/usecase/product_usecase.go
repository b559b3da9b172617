package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/serialize"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/textnorm"
)

// ProductUseCase casos de uso de productos de una tienda.
type ProductUseCase struct {
	products   repository.ProductRepository
	stores     repository.StoreRepository
	categories repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	categories repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, stores: stores, categories: categories}
}

// ListByStore lista los productos de la tienda; con onlyActive solo los activos.
// ErrNotFound si la tienda no existe.
func (uc *ProductUseCase) ListByStore(ctx context.Context, storeID int64, onlyActive bool) (*dto.StoreProductsResponse, error) {
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: tienda %d", domain.ErrNotFound, storeID)
	}
	products, err := uc.products.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	cats, err := categoryIndex(ctx, uc.categories)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreProductsResponse{StoreID: storeID, Products: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		if onlyActive && !p.Active {
			continue
		}
		out.Products = append(out.Products, serialize.Product(p, lookup(cats, p.CategoryID)))
	}
	return out, nil
}

// Create publica un producto en la tienda. Tienda y categoría deben existir.
func (uc *ProductUseCase) Create(ctx context.Context, storeID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price == nil || in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price", domain.ErrInvalidInput)
	}
	store, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: tienda %d", domain.ErrNotFound, storeID)
	}
	categoryID := int64(in.CategoryID)
	category, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, categoryID)
	}

	p := &entity.Product{
		Name:        textnorm.Name(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		ImgURL:      in.ImgURL,
		CategoryID:  &categoryID,
		StoreID:     storeID,
	}
	if in.AmountAvailable != nil {
		p.AmountAvailable = int64(*in.AmountAvailable)
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	out := serialize.Product(p, category)
	return &out, nil
}

func lookup(cats map[int64]*entity.Category, id *int64) *entity.Category {
	if id == nil {
		return nil
	}
	return cats[*id]
}
