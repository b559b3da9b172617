package memory

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct {
	table[entity.User]
}

var _ repository.UserRepository = (*UserRepo)(nil)

func userTable(s *Store) table[entity.User] {
	return table[entity.User]{
		s:     s,
		name:  "user",
		rows:  func(st *state) map[int64]entity.User { return st.users },
		id:    func(e *entity.User) int64 { return e.ID },
		setID: func(e *entity.User, id int64) { e.ID = id },
		check: func(st *state, e *entity.User) error {
			for _, u := range st.users {
				if u.Email == e.Email {
					return duplicate("email")
				}
			}
			return nil
		},
		delete: cascadeUser,
	}
}

// GetByEmail devuelve nil si no existe. El email debe venir normalizado.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, func(u *entity.User) bool { return u.Email == email })
}

// BuyerRepo implementa repository.BuyerRepository en memoria.
type BuyerRepo struct {
	table[entity.Buyer]
}

var _ repository.BuyerRepository = (*BuyerRepo)(nil)

func buyerTable(s *Store) table[entity.Buyer] {
	return table[entity.Buyer]{
		s:     s,
		name:  "buyer",
		rows:  func(st *state) map[int64]entity.Buyer { return st.buyers },
		id:    func(e *entity.Buyer) int64 { return e.ID },
		setID: func(e *entity.Buyer, id int64) { e.ID = id },
		check: func(st *state, e *entity.Buyer) error {
			if _, ok := st.users[e.UserID]; !ok {
				return missing("user_id")
			}
			for _, b := range st.buyers {
				if b.IDNumber == e.IDNumber {
					return duplicate("id_number")
				}
			}
			return nil
		},
		delete: cascadeBuyer,
	}
}

func (r *BuyerRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Buyer, error) {
	return r.first(ctx, func(b *entity.Buyer) bool { return b.UserID == userID })
}

// SellerRepo implementa repository.SellerRepository en memoria.
type SellerRepo struct {
	table[entity.Seller]
}

var _ repository.SellerRepository = (*SellerRepo)(nil)

func sellerTable(s *Store) table[entity.Seller] {
	return table[entity.Seller]{
		s:     s,
		name:  "seller",
		rows:  func(st *state) map[int64]entity.Seller { return st.sellers },
		id:    func(e *entity.Seller) int64 { return e.ID },
		setID: func(e *entity.Seller, id int64) { e.ID = id },
		check: func(st *state, e *entity.Seller) error {
			if _, ok := st.users[e.UserID]; !ok {
				return missing("user_id")
			}
			for _, s := range st.sellers {
				if s.CompanyName == e.CompanyName {
					return duplicate("company_name")
				}
				if s.IdentificationNumber == e.IdentificationNumber {
					return duplicate("identification_number")
				}
			}
			return nil
		},
		delete: cascadeSeller,
	}
}

func (r *SellerRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Seller, error) {
	return r.first(ctx, func(s *entity.Seller) bool { return s.UserID == userID })
}
