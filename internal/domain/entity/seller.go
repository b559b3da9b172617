package entity

// Seller rol vendedor de un User. Es dueño de tiendas.
type Seller struct {
	ID                   int64
	CompanyName          string // único
	IdentificationNumber string // único
	CellphoneNumber      string
	UserID               int64
}
