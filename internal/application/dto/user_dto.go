package dto

// SignupBuyerRequest entrada de POST /signup-buyer.
type SignupBuyerRequest struct {
	Email           string `json:"email" validate:"required,email,max=120"`
	Password        string `json:"password" validate:"required,min=8,max=40"`
	FirstName       string `json:"first_name" validate:"required,max=120"`
	LastName        string `json:"last_name" validate:"required,max=120"`
	IDNumber        string `json:"id_number" validate:"required,max=12"`
	CellphoneNumber string `json:"cellphone_number" validate:"required,max=30"`
	Address         string `json:"address" validate:"required,max=80"`
}

// SignupSellerRequest entrada de POST /signup-seller: usuario, vendedor y su tienda.
type SignupSellerRequest struct {
	Email                string `json:"email" validate:"required,email,max=120"`
	Password             string `json:"password" validate:"required,min=8,max=40"`
	CompanyName          string `json:"company_name" validate:"required,max=250"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=250"`
	CellphoneNumber      string `json:"cellphone_number" validate:"required,max=250"`
	Name                 string `json:"name" validate:"required,max=120"`
	Description          string `json:"description" validate:"required,max=120"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// BuyerResponse salida de un comprador.
type BuyerResponse struct {
	ID              int64  `json:"id"`
	IDNumber        string `json:"id_number"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	CellphoneNumber string `json:"cellphone_number"`
	Address         string `json:"address"`
	UserID          int64  `json:"user_id"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	ID                   int64  `json:"id"`
	CompanyName          string `json:"company_name"`
	IdentificationNumber string `json:"identification_number"`
	CellphoneNumber      string `json:"cellphone_number"`
	UserID               int64  `json:"user_id"`
}

// UserResponse salida de un usuario (sin password ni sal).
type UserResponse struct {
	ID         int64           `json:"id"`
	Email      string          `json:"email"`
	IsActive   bool            `json:"is_active"`
	UserSeller *SellerResponse `json:"user_seller"`
	UserBuyer  *BuyerResponse  `json:"user_buyer"`
}

// SignupBuyerResponse salida de POST /signup-buyer.
type SignupBuyerResponse struct {
	Msg  string       `json:"msg"`
	User UserResponse `json:"user"`
}

// SellerAccount usuario, vendedor y tienda creados juntos.
type SellerAccount struct {
	User   UserResponse   `json:"user"`
	Seller SellerResponse `json:"seller"`
	Store  StoreResponse  `json:"store"`
}

// SignupSellerResponse salida de POST /signup-seller.
type SignupSellerResponse struct {
	Msg      string        `json:"msg"`
	Response SellerAccount `json:"response"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	User UserResponse `json:"user"`
	Role string       `json:"role"`
	JWT  string       `json:"jwt"`
}

// ProfileResponse salida de GET /me.
type ProfileResponse struct {
	User UserResponse `json:"user"`
	Role string       `json:"role"`
}

// BuyerListResponse lista de compradores.
type BuyerListResponse struct {
	Buyers []BuyerResponse `json:"buyers"`
}

// SellerListResponse lista de vendedores.
type SellerListResponse struct {
	Sellers []SellerResponse `json:"sellers"`
}
