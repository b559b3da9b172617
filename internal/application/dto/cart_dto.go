package dto

// AddProductToBuyRequest entrada de POST /add-product.
type AddProductToBuyRequest struct {
	BuyerID   Int64 `json:"buyer_id" validate:"required,gt=0"`
	ProductID Int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  Int64 `json:"quantity" validate:"required,gt=0"`
}

// EditQuantityRequest entrada de PATCH /edit-product/:id.
type EditQuantityRequest struct {
	Quantity Int64 `json:"quantity" validate:"required,gt=0"`
}

// ProductToBuyResponse salida de una línea del carrito.
type ProductToBuyResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	BuyerID   int64            `json:"buyer_id"`
	Quantity  int64            `json:"quantity,string"`
	Product   *ProductResponse `json:"product"`
}

// ProductToBuyEnvelope salida de alta y edición de una línea.
type ProductToBuyEnvelope struct {
	Msg          string               `json:"msg"`
	ProductToBuy ProductToBuyResponse `json:"product_to_buy"`
}

// CartResponse salida de GET /:buyer_id/products-to-buy.
type CartResponse struct {
	BuyerID       int64                  `json:"buyer_id"`
	ProductsToBuy []ProductToBuyResponse `json:"products_to_buy"`
}
