// @title        Tienda API
// @version      1.0
// @description  Marketplace: compradores, vendedores, tiendas, productos y carrito.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Tienda-api/docs"
	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Tienda-api/internal/interfaces/http"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// storage repositorios y runner transaccional del driver elegido.
type storage struct {
	tx            auth.TxRunner
	users         repository.UserRepository
	buyers        repository.BuyerRepository
	sellers       repository.SellerRepository
	categories    repository.CategoryRepository
	stores        repository.StoreRepository
	products      repository.ProductRepository
	productsToBuy repository.ProductToBuyRepository
	close         func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		db := memory.New()
		return &storage{
			tx:            memory.NewTxRunner(db),
			users:         db.Users(),
			buyers:        db.Buyers(),
			sellers:       db.Sellers(),
			categories:    db.Categories(),
			stores:        db.Stores(),
			products:      db.Products(),
			productsToBuy: db.ProductsToBuy(),
			close:         func() {},
		}, nil
	}

	if cfg.AutoMigrate {
		version, err := postgres.MigrateUp(cfg.ConnectionString())
		if err != nil {
			return nil, err
		}
		log.Info().Uint("version", version).Msg("migraciones aplicadas")
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	repos := postgres.NewRepositories(pool)
	return &storage{
		tx:            postgres.NewTxRunner(pool),
		users:         repos.Users,
		buyers:        repos.Buyers,
		sellers:       repos.Sellers,
		categories:    repos.Categories,
		stores:        repos.Stores,
		products:      repos.Products,
		productsToBuy: repos.ProductsToBuy,
		close:         pool.Close,
	}, nil
}

// component sublogger con el campo "component".
func component(log *logger.Logger, name string) *logger.Logger {
	return log.With(func(c zerolog.Context) zerolog.Context { return c.Str("component", name) })
}

// serve atiende en addr hasta recibir una señal en quit y apaga el servidor.
// Si Listen falla antes, devuelve ese error.
func serve(app *fiber.App, addr string, quit <-chan os.Signal, log *logger.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(addr)
	}()

	select {
	case err := <-serverErr:
		if err == nil {
			err = errors.New("servidor HTTP detenido sin señal de apagado")
		}
		return err
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("señal de apagado recibida, cerrando servidor...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer st.close()

	m := metrics.New(cfg.Metrics.Prefix)
	authUC := auth.NewAuthUseCase(st.tx, st.users, st.buyers, st.sellers, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, component(log, "auth"), m)
	userUC := usecase.NewUserUseCase(st.users, st.buyers, st.sellers)
	categoryUC := usecase.NewCategoryUseCase(st.categories, st.products)
	storeUC := usecase.NewStoreUseCase(st.stores, st.sellers, st.products, st.categories)
	productUC := usecase.NewProductUseCase(st.products, st.stores, st.categories)
	cartUC := usecase.NewCartUseCase(st.productsToBuy, st.buyers, st.products, st.categories,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name))

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CategoryUC:     categoryUC,
		StoreUC:        storeUC,
		ProductUC:      productUC,
		CartUC:         cartUC,
		JWTSecret:      cfg.JWT.Secret,
		AppName:        cfg.App.Name,
		Log:            component(log, "http"),
		Requests:       m,
		MetricsHandler: m.Handler(),
		SwaggerDoc:     docs.SwaggerInfo.ReadDoc,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		if _, err := os.Stat(cfg.Docs.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Docs.FilePath,
				Path:     "docs",
				Title:    "Tienda API",
			}))
		} else {
			log.Warn().Str("path", cfg.Docs.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	if err := serve(app, cfg.HTTP.Addr(), quit, log); err != nil {
		st.close()
		log.Fatal().Err(err).Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP finalizado")
	}

	log.Info().Msg("aplicación detenida")
}
