package dto

import "github.com/shopspring/decimal"

// MinimalResponse proyección reducida (id + nombre) de categorías y productos.
type MinimalResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest entrada de POST /new-category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CategoryResponse salida de una categoría con sus productos.
type CategoryResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Products []MinimalResponse `json:"products"`
}

// CategoryCreatedResponse salida de POST /new-category.
type CategoryCreatedResponse struct {
	Msg      string           `json:"msg"`
	Category CategoryResponse `json:"category"`
}

// CategoryListResponse salida de GET /categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CreateStoreRequest entrada de POST /new-store. SellerID es opcional.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=120"`
	SellerID    Int64  `json:"seller_id" validate:"omitempty,gt=0"`
}

// StoreProductsSummary resumen de productos de una tienda.
type StoreProductsSummary struct {
	Quantity   int               `json:"quantity"`
	Categories []MinimalResponse `json:"categories"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	SellerID    *int64               `json:"seller_id"`
	Products    StoreProductsSummary `json:"products"`
}

// StoreEnvelope salida de GET /:seller_id/store.
type StoreEnvelope struct {
	Store StoreResponse `json:"store"`
}

// StoreCreatedResponse salida de POST /new-store.
type StoreCreatedResponse struct {
	Msg   string        `json:"msg"`
	Store StoreResponse `json:"store"`
}

// StoreListResponse salida de GET /stores.
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// CreateProductRequest entrada de POST /stores/:store_id/new-product.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required,max=120"`
	Description     string           `json:"description" validate:"required,max=240"`
	Price           *decimal.Decimal `json:"price" validate:"required"`
	AmountAvailable *Int64           `json:"amount_available" validate:"required,min=0"`
	Active          *bool            `json:"active" validate:"required"`
	ImgURL          *string          `json:"img_url" validate:"omitempty,max=360"`
	CategoryID      Int64            `json:"category_id" validate:"required,gt=0"`
}

// ProductResponse salida de un producto. Category es null si no tiene categoría.
// Price va con dos decimales; amount_available y las cantidades del carrito
// salen como string, igual que las guardan los clientes existentes.
type ProductResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           string           `json:"price"`
	AmountAvailable int64            `json:"amount_available,string"`
	Active          bool             `json:"active"`
	Category        *MinimalResponse `json:"category"`
	StoreID         int64            `json:"store_id"`
	ImgURL          *string          `json:"img_url"`
}

// ProductCreatedResponse salida de POST /stores/:store_id/new-product.
type ProductCreatedResponse struct {
	Msg     string          `json:"msg"`
	Product ProductResponse `json:"product"`
}

// StoreProductsResponse salida de GET /stores/:store_id/products.
type StoreProductsResponse struct {
	StoreID  int64             `json:"store_id"`
	Products []ProductResponse `json:"products"`
}
