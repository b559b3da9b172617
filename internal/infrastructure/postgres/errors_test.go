package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

func TestMapError(t *testing.T) {
	err := mapError("insert user", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "user_email_key"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Contains(t, err.Error(), "email")

	err = mapError("insert product", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "product_store_id_fkey"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "store_id")

	err = mapError("insert product", &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "product_price_check"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	boom := errors.New("conexión cerrada")
	err = mapError("select user", boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "select user")

	assert.NoError(t, mapError("x", nil))
}

func TestMigrateURL(t *testing.T) {
	u, err := migrateURL("postgres://u:p@db:5432/tienda?sslmode=disable")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://u:p@db:5432/tienda?sslmode=disable", u)

	u, err = migrateURL("postgresql://db/tienda")
	require.NoError(t, err)
	assert.Equal(t, "pgx5://db/tienda", u)

	_, err = migrateURL("mysql://db/tienda")
	assert.Error(t, err)
}

func TestMigrationsEmbebidas(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	// cada versión trae su up y su down
	assert.Len(t, entries, 4)
}
