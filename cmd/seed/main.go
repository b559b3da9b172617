// seed aplica las migraciones pendientes y crea las categorías por defecto.
//
// Uso: go run ./cmd/seed [categoría ...]
// Sin argumentos crea defaultCategories. Las categorías existentes se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var defaultCategories = []string{
	"Electrónica",
	"Hogar",
	"Ropa",
	"Deportes",
	"Juguetes",
	"Libros",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	version, err := postgres.MigrateUp(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Uint("version", version).Msg("esquema al día")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	names := defaultCategories
	if len(os.Args) > 1 {
		names = os.Args[1:]
	}

	repos := postgres.NewRepositories(pool)
	categories := usecase.NewCategoryUseCase(repos.Categories, repos.Products)
	created := 0
	for _, name := range names {
		c, err := categories.Create(ctx, dto.CreateCategoryRequest{Name: name})
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			log.Debug().Str("name", name).Msg("categoría existente")
		case err != nil:
			log.Fatal().Err(err).Str("name", name).Msg("crear categoría")
		default:
			created++
			log.Info().Int64("id", c.ID).Str("name", c.Name).Msg("categoría creada")
		}
	}
	log.Info().Int("created", created).Int("total", len(names)).Msg("seed terminado")
}
