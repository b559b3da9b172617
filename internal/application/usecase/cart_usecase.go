package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/serialize"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito (productos por comprar).
type CartUseCase struct {
	lines      repository.ProductToBuyRepository
	buyers     repository.BuyerRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
	generator  CartPDFGenerator
}

// NewCartUseCase construye el caso de uso. generator puede ser nil si no se sirve el PDF.
func NewCartUseCase(
	lines repository.ProductToBuyRepository,
	buyers repository.BuyerRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	generator CartPDFGenerator,
) *CartUseCase {
	return &CartUseCase{lines: lines, buyers: buyers, products: products, categories: categories, generator: generator}
}

// ListByBuyer devuelve el carrito del comprador. ErrNotFound si el comprador no existe.
func (uc *CartUseCase) ListByBuyer(ctx context.Context, buyerID int64) (*dto.CartResponse, error) {
	if _, err := uc.buyer(ctx, buyerID); err != nil {
		return nil, err
	}
	lines, err := uc.lines.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	cats, err := categoryIndex(ctx, uc.categories)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{BuyerID: buyerID, ProductsToBuy: make([]dto.ProductToBuyResponse, 0, len(lines))}
	for _, l := range lines {
		item, err := uc.project(ctx, l, cats)
		if err != nil {
			return nil, err
		}
		out.ProductsToBuy = append(out.ProductsToBuy, item)
	}
	return out, nil
}

// Add agrega una línea al carrito. Comprador y producto deben existir.
func (uc *CartUseCase) Add(ctx context.Context, in dto.AddProductToBuyRequest) (*dto.ProductToBuyResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", domain.ErrInvalidInput)
	}
	buyerID, productID := int64(in.BuyerID), int64(in.ProductID)
	if _, err := uc.buyer(ctx, buyerID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
	}
	l := &entity.ProductToBuy{BuyerID: buyerID, ProductID: productID, Quantity: int64(in.Quantity)}
	if err := uc.lines.Create(ctx, l); err != nil {
		return nil, err
	}
	return uc.single(ctx, l)
}

// EditQuantity cambia la cantidad de una línea. ErrNotFound si no existe.
func (uc *CartUseCase) EditQuantity(ctx context.Context, id int64, in dto.EditQuantityRequest) (*dto.ProductToBuyResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", domain.ErrInvalidInput)
	}
	if err := uc.lines.UpdateQuantity(ctx, id, int64(in.Quantity)); err != nil {
		return nil, err
	}
	l, err := uc.lines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: producto por comprar %d", domain.ErrNotFound, id)
	}
	return uc.single(ctx, l)
}

// Delete elimina una línea del carrito.
func (uc *CartUseCase) Delete(ctx context.Context, id int64) error {
	return uc.lines.DeleteByID(ctx, id)
}

// Document genera el PDF con el resumen del carrito del comprador.
func (uc *CartUseCase) Document(ctx context.Context, buyerID int64) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("carrito: generador de PDF no configurado")
	}
	buyer, err := uc.buyer(ctx, buyerID)
	if err != nil {
		return nil, "", err
	}
	lines, err := uc.lines.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, "", err
	}
	enriched := make([]CartLineForPDF, 0, len(lines))
	for _, l := range lines {
		item := CartLineForPDF{ProductToBuy: *l, ProductName: fmt.Sprintf("Producto %d", l.ProductID)}
		if p, pErr := uc.products.GetByID(ctx, l.ProductID); pErr == nil && p != nil {
			item.ProductName = p.Name
			item.UnitPrice = p.Price
		}
		enriched = append(enriched, item)
	}
	pdf, err := uc.generator.GenerateCartPDF(ctx, buyer, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("carrito: generación de PDF fallida: %w", err)
	}
	return pdf, fmt.Sprintf("carrito_%d.pdf", buyerID), nil
}

func (uc *CartUseCase) buyer(ctx context.Context, id int64) (*entity.Buyer, error) {
	b, err := uc.buyers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: comprador %d", domain.ErrNotFound, id)
	}
	return b, nil
}

func (uc *CartUseCase) single(ctx context.Context, l *entity.ProductToBuy) (*dto.ProductToBuyResponse, error) {
	cats, err := categoryIndex(ctx, uc.categories)
	if err != nil {
		return nil, err
	}
	out, err := uc.project(ctx, l, cats)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// project proyecta la línea con su producto (null si ya no existe).
func (uc *CartUseCase) project(ctx context.Context, l *entity.ProductToBuy, cats map[int64]*entity.Category) (dto.ProductToBuyResponse, error) {
	p, err := uc.products.GetByID(ctx, l.ProductID)
	if err != nil {
		return dto.ProductToBuyResponse{}, err
	}
	var product *dto.ProductResponse
	if p != nil {
		pr := serialize.Product(p, lookup(cats, p.CategoryID))
		product = &pr
	}
	return serialize.ProductToBuy(l, product), nil
}
