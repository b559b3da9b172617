package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

// table implementa repository.Repository[T] para una tabla con PK "id" BIGSERIAL.
// columns no incluye id; scan recibe las columnas en el orden id, columns...
type table[T any] struct {
	q       Querier
	name    string
	columns []string
	scan    func(row pgx.Row) (*T, error)
	values  func(e *T) []any
	setID   func(e *T, id int64)
}

func (t table[T]) ident() string {
	return pgx.Identifier{t.name}.Sanitize()
}

func (t table[T]) selectSQL() string {
	cols := make([]string, 0, len(t.columns)+1)
	cols = append(cols, "id")
	for _, c := range t.columns {
		cols = append(cols, pgx.Identifier{c}.Sanitize())
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + t.ident()
}

func (t table[T]) Create(ctx context.Context, e *T) error {
	cols := make([]string, len(t.columns))
	params := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = pgx.Identifier{c}.Sanitize()
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.ident(), strings.Join(cols, ", "), strings.Join(params, ", "))

	var id int64
	if err := t.q.QueryRow(ctx, sql, t.values(e)...).Scan(&id); err != nil {
		return mapError("insert "+t.name, err)
	}
	t.setID(e, id)
	return nil
}

func (t table[T]) GetAll(ctx context.Context) ([]*T, error) {
	return t.list(ctx, "")
}

func (t table[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return t.first(ctx, "id = $1", id)
}

func (t table[T]) DeleteByID(ctx context.Context, id int64) error {
	tag, err := t.q.Exec(ctx, "DELETE FROM "+t.ident()+" WHERE id = $1", id)
	if err != nil {
		return mapError("delete "+t.name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, t.name, id)
	}
	return nil
}

// list devuelve las filas que cumplen where (vacío = todas), ordenadas por id.
func (t table[T]) list(ctx context.Context, where string, args ...any) ([]*T, error) {
	sql := t.selectSQL()
	if where != "" {
		sql += " WHERE " + where
	}
	sql += " ORDER BY id"

	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError("select "+t.name, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		e, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("select "+t.name, err)
	}
	return out, nil
}

// first devuelve la fila de menor id que cumple where, o nil si no hay.
func (t table[T]) first(ctx context.Context, where string, args ...any) (*T, error) {
	sql := t.selectSQL() + " WHERE " + where + " ORDER BY id LIMIT 1"
	e, err := t.scan(t.q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("select "+t.name, err)
	}
	return e, nil
}
