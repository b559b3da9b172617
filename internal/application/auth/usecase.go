package auth

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/serialize"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
	"github.com/jhoicas/Tienda-api/pkg/logger"
	"github.com/jhoicas/Tienda-api/pkg/textnorm"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Observer recibe los eventos de registro y login (métricas).
type Observer interface {
	Signup(role string)
	Login(ok bool)
}

type nopObserver struct{}

func (nopObserver) Signup(string) {}
func (nopObserver) Login(bool)    {}

// AuthUseCase casos de uso de autenticación: registro de compradores y vendedores, y login.
type AuthUseCase struct {
	tx      TxRunner
	users   repository.UserRepository
	buyers  repository.BuyerRepository
	sellers repository.SellerRepository
	jwtCfg  JWTConfig
	log     *logger.Logger
	obs     Observer
}

// NewAuthUseCase construye el caso de uso de auth. obs puede ser nil.
func NewAuthUseCase(
	tx TxRunner,
	users repository.UserRepository,
	buyers repository.BuyerRepository,
	sellers repository.SellerRepository,
	jwtCfg JWTConfig,
	log *logger.Logger,
	obs Observer,
) *AuthUseCase {
	if obs == nil {
		obs = nopObserver{}
	}
	return &AuthUseCase{tx: tx, users: users, buyers: buyers, sellers: sellers, jwtCfg: jwtCfg, log: log, obs: obs}
}

// SignupBuyer crea User + Buyer en una sola transacción.
func (uc *AuthUseCase) SignupBuyer(ctx context.Context, in dto.SignupBuyerRequest) (*dto.UserResponse, error) {
	user, err := entity.NewUser(textnorm.Email(in.Email), in.Password)
	if err != nil {
		return nil, err
	}
	buyer := &entity.Buyer{
		FirstName:       textnorm.Name(in.FirstName),
		LastName:        textnorm.Name(in.LastName),
		IDNumber:        textnorm.Name(in.IDNumber),
		CellphoneNumber: textnorm.Name(in.CellphoneNumber),
		Address:         textnorm.Name(in.Address),
	}
	err = uc.tx.Run(ctx, func(r AccountRepos) error {
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}
		buyer.UserID = user.ID
		return r.Buyers.Create(ctx, buyer)
	})
	if err != nil {
		return nil, err
	}
	uc.obs.Signup(entity.RoleBuyer)
	uc.log.Info().Int64("user_id", user.ID).Int64("buyer_id", buyer.ID).Msg("comprador registrado")

	out := serialize.User(user, buyer, nil)
	return &out, nil
}

// SignupSeller crea User + Seller + Store en una sola transacción.
func (uc *AuthUseCase) SignupSeller(ctx context.Context, in dto.SignupSellerRequest) (*dto.SellerAccount, error) {
	user, err := entity.NewUser(textnorm.Email(in.Email), in.Password)
	if err != nil {
		return nil, err
	}
	seller := &entity.Seller{
		CompanyName:          textnorm.Name(in.CompanyName),
		IdentificationNumber: textnorm.Name(in.IdentificationNumber),
		CellphoneNumber:      textnorm.Name(in.CellphoneNumber),
	}
	store := &entity.Store{
		Name:        textnorm.Name(in.Name),
		Description: in.Description,
	}
	err = uc.tx.Run(ctx, func(r AccountRepos) error {
		if err := r.Users.Create(ctx, user); err != nil {
			return err
		}
		seller.UserID = user.ID
		if err := r.Sellers.Create(ctx, seller); err != nil {
			return err
		}
		store.SellerID = &seller.ID
		return r.Stores.Create(ctx, store)
	})
	if err != nil {
		return nil, err
	}
	uc.obs.Signup(entity.RoleSeller)
	uc.log.Info().Int64("user_id", user.ID).Int64("seller_id", seller.ID).Int64("store_id", store.ID).
		Msg("vendedor registrado")

	return &dto.SellerAccount{
		User:   serialize.User(user, nil, seller),
		Seller: serialize.Seller(seller),
		Store:  serialize.Store(store, nil, nil),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario + rol.
// Email inexistente y contraseña incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, textnorm.Email(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(in.Password) {
		uc.obs.Login(false)
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		uc.obs.Login(false)
		return nil, domain.ErrForbidden
	}
	buyer, err := uc.buyers.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.sellers.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	role := serialize.Role(seller)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.obs.Login(true)
	return &dto.LoginResponse{
		User: serialize.User(user, buyer, seller),
		Role: role,
		JWT:  token,
	}, nil
}
