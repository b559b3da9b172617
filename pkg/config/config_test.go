package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, "postgres://postgres:@localhost:5432/tienda?sslmode=disable", cfg.DB.ConnectionString())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("PORT", "8081")
	t.Setenv("DB_CONNECTION_STRING", "postgres://u:p@db:5432/x")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.ConnectionString())
	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_DatabaseURLTienePrioridad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("DATABASE_URL", "postgres://a:b@primary:5432/x")
	t.Setenv("DB_CONNECTION_STRING", "postgres://u:p@legacy:5432/x")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://a:b@primary:5432/x", cfg.DB.ConnectionString())
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss/w", DBName: "d", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p%40ss%2Fw@h:5432/d?sslmode=require", c.DSN())
}
