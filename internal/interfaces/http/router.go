package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	StoreUC    *usecase.StoreUseCase
	ProductUC  *usecase.ProductUseCase
	CartUC     *usecase.CartUseCase
	JWTSecret  string
	AppName    string
	Log        *logger.Logger

	// Opcionales
	Requests       RequestObserver
	MetricsHandler nethttp.Handler
	SwaggerDoc     func() string
}

// NewApp construye la aplicación Fiber con el ErrorHandler, los middlewares y las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler(deps.Log),
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(deps.Log, deps.Requests))
	app.Use(recover.New())

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}
	if deps.SwaggerDoc != nil {
		app.Get("/swagger.json", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(deps.SwaggerDoc())
		})
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/signup-buyer", authHandler.SignupBuyer)
	app.Post("/signup-seller", authHandler.SignupSeller)
	app.Post("/login", authHandler.Login)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	requireAuth := AuthMiddleware(deps.JWTSecret)
	app.Get("/buyers", userHandler.ListBuyers)
	app.Get("/sellers", userHandler.ListSellers)
	app.Get("/me", requireAuth, userHandler.Me)
	app.Delete("/users/:id", requireAuth, userHandler.Delete)

	// Catálogo
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Post("/new-category", categoryHandler.Create)

	storeHandler := NewStoreHandler(deps.StoreUC)
	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/stores", storeHandler.List)
	app.Post("/new-store", storeHandler.Create)
	app.Get("/stores/:store_id/products", productHandler.ListByStore)
	app.Post("/stores/:store_id/new-product", productHandler.Create)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC)
	app.Post("/add-product", cartHandler.Add)
	app.Patch("/edit-product/:id", cartHandler.EditQuantity)
	app.Delete("/product-to-buy/:id", cartHandler.Delete)
	app.Get("/:buyer_id/products-to-buy", cartHandler.List)
	app.Get("/:buyer_id/products-to-buy/pdf", cartHandler.Document)

	// Rutas con parámetro en el primer segmento van al final
	app.Get("/:seller_id/store", storeHandler.GetBySeller)
}
