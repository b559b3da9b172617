package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/credential"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/pkg/jwt"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

const secret = "test-secret"

func init() {
	credential.Cost = bcrypt.MinCost
}

type countingObserver struct {
	signups map[string]int
	ok, bad int
}

func (o *countingObserver) Signup(role string) { o.signups[role]++ }
func (o *countingObserver) Login(ok bool) {
	if ok {
		o.ok++
		return
	}
	o.bad++
}

func newAuth() (*auth.AuthUseCase, *memory.Store, *countingObserver) {
	db := memory.New()
	obs := &countingObserver{signups: map[string]int{}}
	uc := auth.NewAuthUseCase(
		memory.NewTxRunner(db),
		db.Users(), db.Buyers(), db.Sellers(),
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "tienda-api"},
		logger.Nop(),
		obs,
	)
	return uc, db, obs
}

func buyerIn(email, idNumber string) dto.SignupBuyerRequest {
	return dto.SignupBuyerRequest{
		Email: email, Password: "secreto123", FirstName: "Ana", LastName: "Gómez",
		IDNumber: idNumber, CellphoneNumber: "3001234567", Address: "Calle 1",
	}
}

func sellerIn(email, company string) dto.SignupSellerRequest {
	return dto.SignupSellerRequest{
		Email: email, Password: "secreto123", CompanyName: company, IdentificationNumber: company + "-1",
		CellphoneNumber: "3000000000", Name: company + " tienda", Description: "desc",
	}
}

func TestSignupBuyer_CreaUsuarioYComprador(t *testing.T) {
	uc, db, obs := newAuth()
	ctx := context.Background()

	out, err := uc.SignupBuyer(ctx, buyerIn("Ana@Mail.com", "123"))
	require.NoError(t, err)
	assert.Equal(t, "ana@mail.com", out.Email)
	assert.True(t, out.IsActive)
	require.NotNil(t, out.UserBuyer)
	assert.Equal(t, "123", out.UserBuyer.IDNumber)
	assert.Equal(t, out.ID, out.UserBuyer.UserID)
	assert.Nil(t, out.UserSeller)

	users, _ := db.Users().GetAll(ctx)
	buyers, _ := db.Buyers().GetAll(ctx)
	assert.Len(t, users, 1)
	assert.Len(t, buyers, 1)
	assert.NotEqual(t, "secreto123", users[0].PasswordHash)
	assert.Len(t, users[0].Salt, 32)
	assert.Equal(t, 1, obs.signups[entity.RoleBuyer])
}

func TestSignupBuyer_FalloNoDejaHuerfanos(t *testing.T) {
	uc, db, _ := newAuth()
	ctx := context.Background()
	_, err := uc.SignupBuyer(ctx, buyerIn("a@mail.com", "123"))
	require.NoError(t, err)

	// id_number repetido: el usuario nuevo no debe quedar creado
	_, err = uc.SignupBuyer(ctx, buyerIn("b@mail.com", "123"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	u, err := db.Users().GetByEmail(ctx, "b@mail.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = uc.SignupBuyer(ctx, buyerIn("A@mail.com", "999"))
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestSignupSeller_CreaCuentaCompleta(t *testing.T) {
	uc, db, _ := newAuth()
	ctx := context.Background()

	out, err := uc.SignupSeller(ctx, sellerIn("v@mail.com", "ACME"))
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, out.Seller.UserID)
	require.NotNil(t, out.Store.SellerID)
	assert.Equal(t, out.Seller.ID, *out.Store.SellerID)
	require.NotNil(t, out.User.UserSeller)

	// tienda repetida: ni usuario ni vendedor quedan creados
	in := sellerIn("w@mail.com", "Otra")
	in.Name = "ACME tienda"
	_, err = uc.SignupSeller(ctx, in)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	sellers, _ := db.Sellers().GetAll(ctx)
	assert.Len(t, sellers, 1)
	users, _ := db.Users().GetAll(ctx)
	assert.Len(t, users, 1)
}

func TestLogin(t *testing.T) {
	uc, _, obs := newAuth()
	ctx := context.Background()
	_, err := uc.SignupBuyer(ctx, buyerIn("c@mail.com", "1"))
	require.NoError(t, err)
	_, err = uc.SignupSeller(ctx, sellerIn("v@mail.com", "ACME"))
	require.NoError(t, err)

	t.Run("comprador", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "C@mail.com", Password: "secreto123"})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleBuyer, out.Role)
		userID, role, err := jwt.Parse(secret, out.JWT)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, userID)
		assert.Equal(t, entity.RoleBuyer, role)
	})

	t.Run("vendedor", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Email: "v@mail.com", Password: "secreto123"})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleSeller, out.Role)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "c@mail.com", Password: "otra-clave"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("email inexistente", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "secreto123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	assert.Equal(t, 2, obs.ok)
	assert.Equal(t, 2, obs.bad)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	u, err := entity.NewUser("i@mail.com", "secreto123")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, db.Users().Create(ctx, u))

	uc := auth.NewAuthUseCase(memory.NewTxRunner(db), db.Users(), db.Buyers(), db.Sellers(),
		auth.JWTConfig{Secret: secret, ExpMinutes: 60}, logger.Nop(), nil)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "i@mail.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
