package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func TestUser_ProfileYRol(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	b := e.buyer(t, "b@mail.com", "111")
	s := e.seller(t, "s@mail.com", "ACME")

	p, err := e.users.Profile(ctx, b.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyer, p.Role)
	require.NotNil(t, p.User.UserBuyer)
	assert.Nil(t, p.User.UserSeller)

	p, err = e.users.Profile(ctx, s.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, p.Role)

	_, err = e.users.Profile(ctx, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUser_Listados(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	e.buyer(t, "b@mail.com", "111")
	e.seller(t, "s@mail.com", "ACME")

	buyers, err := e.users.ListBuyers(ctx)
	require.NoError(t, err)
	require.Len(t, buyers.Buyers, 1)
	assert.Equal(t, "111", buyers.Buyers[0].IDNumber)

	sellers, err := e.users.ListSellers(ctx)
	require.NoError(t, err)
	require.Len(t, sellers.Sellers, 1)
	assert.Equal(t, "ACME", sellers.Sellers[0].CompanyName)
}

func TestUser_DeleteAccount(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	b := e.buyer(t, "b@mail.com", "111")
	other := e.buyer(t, "o@mail.com", "222")

	err := e.users.DeleteAccount(ctx, other.UserID, b.UserID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	require.NoError(t, e.users.DeleteAccount(ctx, b.UserID, b.UserID))
	gone, err := e.db.Buyers().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = e.users.DeleteAccount(ctx, b.UserID, b.UserID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
