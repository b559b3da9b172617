package entity

// Store tienda de un vendedor. SellerID es nil si la tienda no tiene dueño.
type Store struct {
	ID          int64
	Name        string
	Description string
	SellerID    *int64
}
