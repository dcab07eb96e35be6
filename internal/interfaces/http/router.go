package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	ProviderUC   *usecase.ProviderUseCase
	ProductUC    *usecase.ProductUseCase
	Processor    *inventory.TransactionProcessor
	Transactions *inventory.TransactionQueryUseCase
	JWTSecret    string
	APIPrefix    string   // p. ej. "/api"
	AppName      string
	CORSOrigins  []string // vacío = cualquier origen, sin credenciales
	Logger       zerolog.Logger
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Logger))
	app.Use(corsMiddleware(deps.CORSOrigins))

	core := NewCoreHandler(deps.AppName)
	app.Get("/health", core.Health)

	api := app.Group(deps.APIPrefix)
	api.Get("/", core.Root)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)
	api.Post("/first-access", authHandler.FirstAccess)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	api.Get("/auth/protected", requireAuth, authHandler.Protected)

	// Users (solo admin)
	users := api.Group("/users", requireAuth, RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Providers
	providers := api.Group("/providers", requireAuth)
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Post("/", providerHandler.Create)
	providers.Get("/:id", providerHandler.GetByID)
	providers.Patch("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	// Products
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/page/:page", productHandler.ListPage)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Transactions
	txHandler := NewTransactionHandler(deps.Processor, deps.Transactions)
	api.Post("/incoming/transaction", requireAuth, txHandler.RegisterIncoming)
	api.Post("/outgoing/transaction", requireAuth, txHandler.RegisterOutgoing)
	// "/transaction" en singular es la ruta que usa el frontend existente
	for _, prefix := range []string{"/transactions", "/transaction"} {
		transactions := api.Group(prefix, requireAuth)
		transactions.Get("/", txHandler.List)
		transactions.Get("/page/:page", txHandler.ListPage)
		transactions.Get("/:id", txHandler.GetByID)
		transactions.Get("/:id/receipt", txHandler.Receipt)
	}
}

func corsMiddleware(origins []string) fiber.Handler {
	allow := strings.Join(origins, ",")
	if allow == "" {
		allow = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders:    HeaderRequestID + ", Content-Disposition",
		AllowCredentials: allow != "*", // fiber rechaza credenciales con origen comodín
	})
}
