package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

type env struct {
	db       *memory.Store
	users    *usecase.UserUseCase
	cats     *usecase.CategoryUseCase
	stores   *usecase.StoreUseCase
	products *usecase.ProductUseCase
	cart     *usecase.CartUseCase
	pdf      *fakePDF
}

type fakePDF struct {
	buyer *entity.Buyer
	lines []usecase.CartLineForPDF
}

func (f *fakePDF) GenerateCartPDF(_ context.Context, buyer *entity.Buyer, lines []usecase.CartLineForPDF) ([]byte, error) {
	f.buyer, f.lines = buyer, lines
	return []byte("%PDF-fake"), nil
}

func newEnv() *env {
	db := memory.New()
	pdf := &fakePDF{}
	return &env{
		db:       db,
		pdf:      pdf,
		users:    usecase.NewUserUseCase(db.Users(), db.Buyers(), db.Sellers()),
		cats:     usecase.NewCategoryUseCase(db.Categories(), db.Products()),
		stores:   usecase.NewStoreUseCase(db.Stores(), db.Sellers(), db.Products(), db.Categories()),
		products: usecase.NewProductUseCase(db.Products(), db.Stores(), db.Categories()),
		cart:     usecase.NewCartUseCase(db.ProductsToBuy(), db.Buyers(), db.Products(), db.Categories(), pdf),
	}
}

// buyer crea usuario + comprador directamente en el store.
func (e *env) buyer(t *testing.T, email, idNumber string) *entity.Buyer {
	t.Helper()
	ctx := context.Background()
	u := &entity.User{Email: email, IsActive: true}
	require.NoError(t, e.db.Users().Create(ctx, u))
	b := &entity.Buyer{FirstName: "Ana", LastName: "Gómez", IDNumber: idNumber, UserID: u.ID}
	require.NoError(t, e.db.Buyers().Create(ctx, b))
	return b
}

func (e *env) seller(t *testing.T, email, company string) *entity.Seller {
	t.Helper()
	ctx := context.Background()
	u := &entity.User{Email: email, IsActive: true}
	require.NoError(t, e.db.Users().Create(ctx, u))
	s := &entity.Seller{CompanyName: company, IdentificationNumber: company + "-nit", UserID: u.ID}
	require.NoError(t, e.db.Sellers().Create(ctx, s))
	return s
}

func (e *env) product(t *testing.T, storeID, categoryID int64, name string, active bool) *dto.ProductResponse {
	t.Helper()
	price := decimal.RequireFromString("10.50")
	amount := dto.Int64(5)
	p, err := e.products.Create(context.Background(), storeID, dto.CreateProductRequest{
		Name:            name,
		Description:     "desc",
		Price:           &price,
		AmountAvailable: &amount,
		Active:          &active,
		CategoryID:      dto.Int64(categoryID),
	})
	require.NoError(t, err)
	return p
}
