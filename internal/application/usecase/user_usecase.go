package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/serialize"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// UserUseCase consultas sobre cuentas: perfil, listados y baja.
type UserUseCase struct {
	users   repository.UserRepository
	buyers  repository.BuyerRepository
	sellers repository.SellerRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, buyers repository.BuyerRepository, sellers repository.SellerRepository) *UserUseCase {
	return &UserUseCase{users: users, buyers: buyers, sellers: sellers}
}

// Profile devuelve el usuario con sus roles. ErrNotFound si ya no existe.
func (uc *UserUseCase) Profile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %d", domain.ErrNotFound, userID)
	}
	buyer, err := uc.buyers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.sellers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		User: serialize.User(user, buyer, seller),
		Role: serialize.Role(seller),
	}, nil
}

// ListBuyers lista todos los compradores.
func (uc *UserUseCase) ListBuyers(ctx context.Context) (*dto.BuyerListResponse, error) {
	buyers, err := uc.buyers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.BuyerListResponse{Buyers: make([]dto.BuyerResponse, 0, len(buyers))}
	for _, b := range buyers {
		out.Buyers = append(out.Buyers, serialize.Buyer(b))
	}
	return out, nil
}

// ListSellers lista todos los vendedores.
func (uc *UserUseCase) ListSellers(ctx context.Context) (*dto.SellerListResponse, error) {
	sellers, err := uc.sellers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.SellerListResponse{Sellers: make([]dto.SellerResponse, 0, len(sellers))}
	for _, s := range sellers {
		out.Sellers = append(out.Sellers, serialize.Seller(s))
	}
	return out, nil
}

// DeleteAccount elimina la cuenta targetID. Solo el propio usuario puede hacerlo.
// El borrado arrastra comprador, vendedor y carrito.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, requesterID, targetID int64) error {
	if requesterID != targetID {
		return domain.ErrForbidden
	}
	return uc.users.DeleteByID(ctx, targetID)
}
