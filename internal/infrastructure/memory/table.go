package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

// table implementa el CRUD genérico sobre uno de los mapas del estado.
// Las funciones reciben el estado ya bloqueado.
type table[T any] struct {
	s      *Store
	name   string
	rows   func(st *state) map[int64]T
	id     func(e *T) int64
	setID  func(e *T, id int64)
	check  func(st *state, e *T) error // únicos y claves foráneas
	delete func(st *state, id int64)   // cascadas
	inTx   bool                        // repos entregados por TxRunner.Run
}

// lock bloquea el estado. Fuera de una transacción espera a que termine la que
// esté en curso, así nadie ve ni pisa sus filas a medio escribir.
func (t table[T]) lock() func() {
	if !t.inTx {
		t.s.txMu.RLock()
	}
	t.s.mu.Lock()
	return func() {
		t.s.mu.Unlock()
		if !t.inTx {
			t.s.txMu.RUnlock()
		}
	}
}

func (t table[T]) Create(ctx context.Context, e *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer t.lock()()
	st := &t.s.st
	if t.check != nil {
		if err := t.check(st, e); err != nil {
			return err
		}
	}
	st.seq[t.name]++
	t.setID(e, st.seq[t.name])
	t.rows(st)[t.id(e)] = *e
	return nil
}

func (t table[T]) GetAll(ctx context.Context) ([]*T, error) {
	return t.filter(ctx, func(*T) bool { return true })
}

func (t table[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer t.lock()()
	e, ok := t.rows(&t.s.st)[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (t table[T]) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer t.lock()()
	st := &t.s.st
	rows := t.rows(st)
	if _, ok := rows[id]; !ok {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, t.name, id)
	}
	t.remove(st, id)
	return nil
}

func (t table[T]) remove(st *state, id int64) {
	delete(t.rows(st), id)
	if t.delete != nil {
		t.delete(st, id)
	}
}

// filter devuelve copias de las filas que cumplen keep, ordenadas por id.
func (t table[T]) filter(ctx context.Context, keep func(e *T) bool) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer t.lock()()
	out := make([]*T, 0)
	for _, e := range t.rows(&t.s.st) {
		if keep(&e) {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.id(out[i]) < t.id(out[j]) })
	return out, nil
}

// first devuelve la primera fila que cumple keep o nil.
func (t table[T]) first(ctx context.Context, keep func(e *T) bool) (*T, error) {
	rows, err := t.filter(ctx, keep)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

func duplicate(field string) error {
	return fmt.Errorf("%w: %s", domain.ErrDuplicate, field)
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", domain.ErrNotFound, field)
}
