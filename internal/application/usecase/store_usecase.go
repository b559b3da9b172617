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

// StoreUseCase casos de uso de tiendas.
type StoreUseCase struct {
	stores     repository.StoreRepository
	sellers    repository.SellerRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(
	stores repository.StoreRepository,
	sellers repository.SellerRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) *StoreUseCase {
	return &StoreUseCase{stores: stores, sellers: sellers, products: products, categories: categories}
}

// List devuelve todas las tiendas con el resumen de sus productos.
func (uc *StoreUseCase) List(ctx context.Context) (*dto.StoreListResponse, error) {
	stores, err := uc.stores.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := categoryIndex(ctx, uc.categories)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreListResponse{Stores: make([]dto.StoreResponse, 0, len(stores))}
	for _, s := range stores {
		products, err := uc.products.ListByStore(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		out.Stores = append(out.Stores, serialize.Store(s, products, cats))
	}
	return out, nil
}

// GetBySeller devuelve la tienda del vendedor. ErrNotFound si no tiene.
func (uc *StoreUseCase) GetBySeller(ctx context.Context, sellerID int64) (*dto.StoreResponse, error) {
	s, err := uc.stores.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: tienda del vendedor %d", domain.ErrNotFound, sellerID)
	}
	return uc.project(ctx, s)
}

// Create crea una tienda; si se indica vendedor debe existir.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	s := &entity.Store{
		Name:        textnorm.Name(in.Name),
		Description: in.Description,
	}
	if in.SellerID > 0 {
		sellerID := int64(in.SellerID)
		seller, err := uc.sellers.GetByID(ctx, sellerID)
		if err != nil {
			return nil, err
		}
		if seller == nil {
			return nil, fmt.Errorf("%w: vendedor %d", domain.ErrNotFound, sellerID)
		}
		s.SellerID = &sellerID
	}
	if err := uc.stores.Create(ctx, s); err != nil {
		return nil, err
	}
	out := serialize.Store(s, nil, nil)
	return &out, nil
}

func (uc *StoreUseCase) project(ctx context.Context, s *entity.Store) (*dto.StoreResponse, error) {
	products, err := uc.products.ListByStore(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	cats, err := categoryIndex(ctx, uc.categories)
	if err != nil {
		return nil, err
	}
	out := serialize.Store(s, products, cats)
	return &out, nil
}

// categoryIndex indexa todas las categorías por id.
func categoryIndex(ctx context.Context, repo repository.CategoryRepository) (map[int64]*entity.Category, error) {
	cats, err := repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[int64]*entity.Category, len(cats))
	for _, c := range cats {
		idx[c.ID] = c
	}
	return idx, nil
}
