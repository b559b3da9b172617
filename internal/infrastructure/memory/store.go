// Package memory implementa los repositorios en memoria. Aplica las mismas
// restricciones que el esquema SQL (únicos, claves foráneas y cascadas) para
// que desarrollo local y tests se comporten como PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

type state struct {
	seq        map[string]int64
	users      map[int64]entity.User
	buyers     map[int64]entity.Buyer
	sellers    map[int64]entity.Seller
	categories map[int64]entity.Category
	stores     map[int64]entity.Store
	products   map[int64]entity.Product
	cart       map[int64]entity.ProductToBuy
}

func newState() state {
	return state{
		seq:        make(map[string]int64),
		users:      make(map[int64]entity.User),
		buyers:     make(map[int64]entity.Buyer),
		sellers:    make(map[int64]entity.Seller),
		categories: make(map[int64]entity.Category),
		stores:     make(map[int64]entity.Store),
		products:   make(map[int64]entity.Product),
		cart:       make(map[int64]entity.ProductToBuy),
	}
}

func cloneMap[T any](m map[int64]T) map[int64]T {
	out := make(map[int64]T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s state) clone() state {
	seq := make(map[string]int64, len(s.seq))
	for k, v := range s.seq {
		seq[k] = v
	}
	return state{
		seq:        seq,
		users:      cloneMap(s.users),
		buyers:     cloneMap(s.buyers),
		sellers:    cloneMap(s.sellers),
		categories: cloneMap(s.categories),
		stores:     cloneMap(s.stores),
		products:   cloneMap(s.products),
		cart:       cloneMap(s.cart),
	}
}

// Store base de datos en memoria. Seguro para uso concurrente.
type Store struct {
	mu   sync.Mutex
	txMu sync.RWMutex // exclusivo durante una transacción
	st   state
}

// New crea una base vacía.
func New() *Store {
	return &Store{st: newState()}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{table: userTable(s)} }

// Buyers repositorio de compradores.
func (s *Store) Buyers() *BuyerRepo { return &BuyerRepo{table: buyerTable(s)} }

// Sellers repositorio de vendedores.
func (s *Store) Sellers() *SellerRepo { return &SellerRepo{table: sellerTable(s)} }

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{table: categoryTable(s)} }

// Stores repositorio de tiendas.
func (s *Store) Stores() *StoreRepo { return &StoreRepo{table: storeTable(s)} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{table: productTable(s)} }

// ProductsToBuy repositorio del carrito.
func (s *Store) ProductsToBuy() *ProductToBuyRepo {
	return &ProductToBuyRepo{table: productToBuyTable(s)}
}

// TxRunner ejecuta funciones de forma atómica sobre el Store.
type TxRunner struct {
	s *Store
}

// NewTxRunner crea el TxRunner en memoria.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

var _ auth.TxRunner = (*TxRunner)(nil)

// Run toma una instantánea del estado; si fn falla la restaura. Mientras fn
// corre, el resto de lecturas y escrituras del Store esperan.
func (r *TxRunner) Run(ctx context.Context, fn func(repos auth.AccountRepos) error) error {
	s := r.s
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snap := s.st.clone()
	s.mu.Unlock()

	users, buyers, sellers, stores := s.Users(), s.Buyers(), s.Sellers(), s.Stores()
	users.inTx, buyers.inTx, sellers.inTx, stores.inTx = true, true, true, true
	err := fn(auth.AccountRepos{
		Users:   users,
		Buyers:  buyers,
		Sellers: sellers,
		Stores:  stores,
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		s.mu.Lock()
		s.st = snap
		s.mu.Unlock()
		return err
	}
	return nil
}
