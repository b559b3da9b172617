package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository.
type UserRepo struct {
	table[entity.User]
}

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepository construye el repositorio con un pool o una transacción.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{table[entity.User]{
		q:       q,
		name:    "user",
		columns: []string{"email", "salt", "hashed_password", "is_active"},
		scan: func(row pgx.Row) (*entity.User, error) {
			var u entity.User
			if err := row.Scan(&u.ID, &u.Email, &u.Salt, &u.PasswordHash, &u.IsActive); err != nil {
				return nil, err
			}
			return &u, nil
		},
		values: func(u *entity.User) []any {
			return []any{u.Email, u.Salt, u.PasswordHash, u.IsActive}
		},
		setID: func(u *entity.User, id int64) { u.ID = id },
	}}
}

// GetByEmail devuelve nil si no existe. El email debe venir normalizado.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = $1", email)
}

// BuyerRepo implementa repository.BuyerRepository.
type BuyerRepo struct {
	table[entity.Buyer]
}

var _ repository.BuyerRepository = (*BuyerRepo)(nil)

func NewBuyerRepository(q Querier) *BuyerRepo {
	return &BuyerRepo{table[entity.Buyer]{
		q:       q,
		name:    "buyer",
		columns: []string{"first_name", "last_name", "id_number", "cellphone_number", "address", "user_id"},
		scan: func(row pgx.Row) (*entity.Buyer, error) {
			var b entity.Buyer
			if err := row.Scan(&b.ID, &b.FirstName, &b.LastName, &b.IDNumber, &b.CellphoneNumber, &b.Address, &b.UserID); err != nil {
				return nil, err
			}
			return &b, nil
		},
		values: func(b *entity.Buyer) []any {
			return []any{b.FirstName, b.LastName, b.IDNumber, b.CellphoneNumber, b.Address, b.UserID}
		},
		setID: func(b *entity.Buyer, id int64) { b.ID = id },
	}}
}

func (r *BuyerRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Buyer, error) {
	return r.first(ctx, "user_id = $1", userID)
}

// SellerRepo implementa repository.SellerRepository.
type SellerRepo struct {
	table[entity.Seller]
}

var _ repository.SellerRepository = (*SellerRepo)(nil)

func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{table[entity.Seller]{
		q:       q,
		name:    "seller",
		columns: []string{"company_name", "identification_number", "cellphone_number", "user_id"},
		scan: func(row pgx.Row) (*entity.Seller, error) {
			var s entity.Seller
			if err := row.Scan(&s.ID, &s.CompanyName, &s.IdentificationNumber, &s.CellphoneNumber, &s.UserID); err != nil {
				return nil, err
			}
			return &s, nil
		},
		values: func(s *entity.Seller) []any {
			return []any{s.CompanyName, s.IdentificationNumber, s.CellphoneNumber, s.UserID}
		},
		setID: func(s *entity.Seller, id int64) { s.ID = id },
	}}
}

func (r *SellerRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Seller, error) {
	return r.first(ctx, "user_id = $1", userID)
}
