package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CartLineForPDF línea del carrito enriquecida con los datos del producto.
type CartLineForPDF struct {
	entity.ProductToBuy
	ProductName string
	UnitPrice   decimal.Decimal
}

// Subtotal precio unitario por cantidad.
func (l CartLineForPDF) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// CartPDFGenerator genera el resumen del carrito en PDF.
type CartPDFGenerator interface {
	GenerateCartPDF(ctx context.Context, buyer *entity.Buyer, lines []CartLineForPDF) ([]byte, error)
}
