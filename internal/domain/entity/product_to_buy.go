package entity

// ProductToBuy línea del carrito de un comprador.
type ProductToBuy struct {
	ID        int64
	BuyerID   int64
	ProductID int64
	Quantity  int64
}
