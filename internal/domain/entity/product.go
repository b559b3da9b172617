package entity

import "github.com/shopspring/decimal"

// Product producto publicado en una tienda.
// CategoryID queda en nil si la categoría fue eliminada.
type Product struct {
	ID              int64
	Name            string
	Description     string
	Price           decimal.Decimal
	AmountAvailable int64
	Active          bool
	ImgURL          *string
	CategoryID      *int64
	StoreID         int64
}
