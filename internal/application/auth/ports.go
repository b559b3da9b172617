package auth

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// AccountRepos repositorios atados a una misma transacción.
type AccountRepos struct {
	Users   repository.UserRepository
	Buyers  repository.BuyerRepository
	Sellers repository.SellerRepository
	Stores  repository.StoreRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error no queda
// ninguna fila creada. Garantiza atomicidad de los registros de cuentas.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos AccountRepos) error) error
}
