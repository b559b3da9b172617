package serialize_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/serialize"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestUser_NoExponeCredenciales(t *testing.T) {
	u := &entity.User{ID: 1, Email: "a@b.co", Salt: "sal-secreta", PasswordHash: "hash-secreto", IsActive: true}
	b := &entity.Buyer{ID: 7, IDNumber: "123", FirstName: "Ana", UserID: 1}

	raw, err := json.Marshal(serialize.User(u, b, nil))
	require.NoError(t, err)

	s := string(raw)
	assert.NotContains(t, s, "sal-secreta")
	assert.NotContains(t, s, "hash-secreto")
	assert.Contains(t, s, `"user_seller":null`)
	assert.Contains(t, s, `"id_number":"123"`)
}

func TestRole(t *testing.T) {
	assert.Equal(t, entity.RoleBuyer, serialize.Role(nil))
	assert.Equal(t, entity.RoleSeller, serialize.Role(&entity.Seller{ID: 1}))
}

func TestProduct_SinCategoriaEsNull(t *testing.T) {
	p := &entity.Product{ID: 3, Name: "Mouse", Price: decimal.RequireFromString("10.50"), StoreID: 2}

	raw, err := json.Marshal(serialize.Product(p, nil))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":null`)
	assert.Contains(t, string(raw), `"img_url":null`)
	assert.Contains(t, string(raw), `"price":"10.50"`)
	assert.Contains(t, string(raw), `"amount_available":"0"`)
}

func TestStore_CategoriasDistintasYOmiteHuerfanos(t *testing.T) {
	s := &entity.Store{ID: 1, Name: "Tienda", SellerID: ptr(int64(9))}
	cats := map[int64]*entity.Category{
		10: {ID: 10, Name: "Electrónica"},
	}
	products := []*entity.Product{
		{ID: 1, CategoryID: ptr(int64(10))},
		{ID: 2, CategoryID: ptr(int64(10))},
		{ID: 3, CategoryID: nil},
		{ID: 4, CategoryID: ptr(int64(99))}, // categoría inexistente
	}

	out := serialize.Store(s, products, cats)
	assert.Equal(t, 4, out.Products.Quantity)
	require.Len(t, out.Products.Categories, 1)
	assert.Equal(t, "Electrónica", out.Products.Categories[0].Name)
	assert.Equal(t, int64(9), *out.SellerID)
}

func TestCategory_ListaVaciaNoEsNull(t *testing.T) {
	raw, err := json.Marshal(serialize.Category(&entity.Category{ID: 1, Name: "X"}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"products":[]`)
}

func TestProductToBuy_ConProducto(t *testing.T) {
	prod := serialize.Product(&entity.Product{ID: 4, Name: "Mouse"}, &entity.Category{ID: 1, Name: "X"})
	out := serialize.ProductToBuy(&entity.ProductToBuy{ID: 1, BuyerID: 2, ProductID: 4, Quantity: 3}, &prod)

	assert.Equal(t, int64(3), out.Quantity)
	require.NotNil(t, out.Product)
	assert.Equal(t, "Mouse", out.Product.Name)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":"3"`)
}
