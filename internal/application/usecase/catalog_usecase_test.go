package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

func TestCategory_CreateYDuplicado(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	c, err := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "  Electronics "})
	require.NoError(t, err)
	assert.Equal(t, "Electronics", c.Name)
	assert.NotZero(t, c.ID)
	assert.NotNil(t, c.Products)

	_, err = e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	_, err = e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "   "})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCategory_ListIncluyeProductos(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c, err := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	require.NoError(t, err)
	s, err := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Tienda", Description: "d"})
	require.NoError(t, err)
	p := e.product(t, s.ID, c.ID, "Silla", true)

	first, err := e.cats.List(ctx)
	require.NoError(t, err)
	require.Len(t, first.Categories, 1)
	require.Len(t, first.Categories[0].Products, 1)
	assert.Equal(t, p.ID, first.Categories[0].Products[0].ID)

	// lecturas repetidas sin escrituras intermedias dan lo mismo
	second, err := e.cats.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_CreateConYSinVendedor(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	s, err := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Sin dueño", Description: "d"})
	require.NoError(t, err)
	assert.Nil(t, s.SellerID)
	assert.Equal(t, 0, s.Products.Quantity)
	assert.NotNil(t, s.Products.Categories)

	_, err = e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Otra", Description: "d", SellerID: 99})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	seller := e.seller(t, "v@mail.com", "ACME")
	s2, err := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "ACME store", Description: "d", SellerID: dto.Int64(seller.ID)})
	require.NoError(t, err)
	require.NotNil(t, s2.SellerID)
	assert.Equal(t, seller.ID, *s2.SellerID)

	got, err := e.stores.GetBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, s2.ID, got.ID)

	_, err = e.stores.GetBySeller(ctx, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = e.stores.Create(ctx, dto.CreateStoreRequest{Name: "ACME store", Description: "d"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestStore_ResumenDeProductos(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	hogar, _ := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	ropa, _ := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Ropa"})
	s, err := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Tienda", Description: "d"})
	require.NoError(t, err)
	e.product(t, s.ID, hogar.ID, "Silla", true)
	e.product(t, s.ID, hogar.ID, "Mesa", true)
	e.product(t, s.ID, ropa.ID, "Camisa", false)

	list, err := e.stores.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Stores, 1)
	summary := list.Stores[0].Products
	assert.Equal(t, 3, summary.Quantity)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Hogar", summary.Categories[0].Name)
	assert.Equal(t, "Ropa", summary.Categories[1].Name)
}

func TestProduct_CreateValidaReferencias(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c, _ := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	s, _ := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Tienda", Description: "d"})
	price := decimal.NewFromInt(1)
	active := true
	amount := dto.Int64(0)
	in := dto.CreateProductRequest{Name: "p", Description: "d", Price: &price, Active: &active, AmountAvailable: &amount, CategoryID: dto.Int64(c.ID)}

	_, err := e.products.Create(ctx, 999, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	bad := in
	bad.CategoryID = 999
	_, err = e.products.Create(ctx, s.ID, bad)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	negative := decimal.NewFromInt(-1)
	bad = in
	bad.Price = &negative
	_, err = e.products.Create(ctx, s.ID, bad)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	p, err := e.products.Create(ctx, s.ID, in)
	require.NoError(t, err)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Hogar", p.Category.Name)
	assert.Nil(t, p.ImgURL)
	assert.Equal(t, s.ID, p.StoreID)
}

func TestProduct_ListByStore(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c, _ := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	s, _ := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Tienda", Description: "d"})
	e.product(t, s.ID, c.ID, "Activo", true)
	e.product(t, s.ID, c.ID, "Inactivo", false)

	all, err := e.products.ListByStore(ctx, s.ID, false)
	require.NoError(t, err)
	assert.Len(t, all.Products, 2)
	assert.Equal(t, "10.50", all.Products[0].Price)

	active, err := e.products.ListByStore(ctx, s.ID, true)
	require.NoError(t, err)
	require.Len(t, active.Products, 1)
	assert.Equal(t, "Activo", active.Products[0].Name)

	_, err = e.products.ListByStore(ctx, 999, false)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProduct_CategoriaEliminadaQuedaNull(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c, _ := e.cats.Create(ctx, dto.CreateCategoryRequest{Name: "Hogar"})
	s, _ := e.stores.Create(ctx, dto.CreateStoreRequest{Name: "Tienda", Description: "d"})
	e.product(t, s.ID, c.ID, "Silla", true)

	require.NoError(t, e.db.Categories().DeleteByID(ctx, c.ID))
	out, err := e.products.ListByStore(ctx, s.ID, false)
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Nil(t, out.Products[0].Category)
}
