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

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products}
}

// List devuelve todas las categorías con sus productos.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	cats, err := uc.categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{Categories: make([]dto.CategoryResponse, 0, len(cats))}
	for _, c := range cats {
		products, err := uc.products.ListByCategory(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		out.Categories = append(out.Categories, serialize.Category(c, products))
	}
	return out, nil
}

// Create crea una categoría. El nombre se normaliza y debe ser único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := textnorm.Name(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrInvalidInput)
	}
	existing, err := uc.categories.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
	}
	c := &entity.Category{Name: name}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	out := serialize.Category(c, nil)
	return &out, nil
}
