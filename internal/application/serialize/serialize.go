// Package serialize proyecta entidades a las respuestas JSON de la API.
// Las relaciones ausentes se proyectan como null (o se omiten en listas); nunca se
// expone la contraseña ni la sal de un usuario.
package serialize

import (
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// User proyecta un usuario con sus roles asociados (cualquiera puede ser nil).
func User(u *entity.User, buyer *entity.Buyer, seller *entity.Seller) dto.UserResponse {
	out := dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
	if buyer != nil {
		b := Buyer(buyer)
		out.UserBuyer = &b
	}
	if seller != nil {
		s := Seller(seller)
		out.UserSeller = &s
	}
	return out
}

// Role rol del usuario: seller si tiene vendedor asociado, si no buyer.
func Role(seller *entity.Seller) string {
	if seller != nil {
		return entity.RoleSeller
	}
	return entity.RoleBuyer
}

// Buyer proyecta un comprador.
func Buyer(b *entity.Buyer) dto.BuyerResponse {
	return dto.BuyerResponse{
		ID:              b.ID,
		IDNumber:        b.IDNumber,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		CellphoneNumber: b.CellphoneNumber,
		Address:         b.Address,
		UserID:          b.UserID,
	}
}

// Seller proyecta un vendedor.
func Seller(s *entity.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		ID:                   s.ID,
		CompanyName:          s.CompanyName,
		IdentificationNumber: s.IdentificationNumber,
		CellphoneNumber:      s.CellphoneNumber,
		UserID:               s.UserID,
	}
}

// MinimalCategory proyección id + nombre de una categoría; nil si c es nil.
func MinimalCategory(c *entity.Category) *dto.MinimalResponse {
	if c == nil {
		return nil
	}
	return &dto.MinimalResponse{ID: c.ID, Name: c.Name}
}

// Category proyecta una categoría con la lista reducida de sus productos.
func Category(c *entity.Category, products []*entity.Product) dto.CategoryResponse {
	items := make([]dto.MinimalResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.MinimalResponse{ID: p.ID, Name: p.Name})
	}
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, Products: items}
}

// Store proyecta una tienda con el conteo de productos y sus categorías distintas.
// categories indexa por id; los productos sin categoría (o con una ya eliminada) se omiten.
func Store(s *entity.Store, products []*entity.Product, categories map[int64]*entity.Category) dto.StoreResponse {
	seen := make(map[int64]bool)
	cats := make([]dto.MinimalResponse, 0)
	for _, p := range products {
		if p.CategoryID == nil || seen[*p.CategoryID] {
			continue
		}
		c, ok := categories[*p.CategoryID]
		if !ok || c == nil {
			continue
		}
		seen[c.ID] = true
		cats = append(cats, *MinimalCategory(c))
	}
	return dto.StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		SellerID:    s.SellerID,
		Products: dto.StoreProductsSummary{
			Quantity:   len(products),
			Categories: cats,
		},
	}
}

// Product proyecta un producto; category puede ser nil.
func Product(p *entity.Product, category *entity.Category) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price.StringFixed(2),
		AmountAvailable: p.AmountAvailable,
		Active:          p.Active,
		Category:        MinimalCategory(category),
		StoreID:         p.StoreID,
		ImgURL:          p.ImgURL,
	}
}

// ProductToBuy proyecta una línea del carrito; product es nil si ya no existe.
func ProductToBuy(l *entity.ProductToBuy, product *dto.ProductResponse) dto.ProductToBuyResponse {
	return dto.ProductToBuyResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		BuyerID:   l.BuyerID,
		Quantity:  l.Quantity,
		Product:   product,
	}
}
