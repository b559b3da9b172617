package entity

// Buyer rol comprador de un User.
type Buyer struct {
	ID              int64
	FirstName       string
	LastName        string
	IDNumber        string // documento, único
	CellphoneNumber string
	Address         string
	UserID          int64
}
