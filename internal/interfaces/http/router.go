package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryCommands *catalog.CommandService
	CategoryQueries  *catalog.QueryService
	OrderUC          *usecase.OrderUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
	Log              *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público). Las rutas fijas van antes que /:id.
	categoryHandler := NewCategoryHandler(deps.CategoryCommands, deps.CategoryQueries, deps.Log)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/parents", categoryHandler.Parents)
	categories.Get("/children", categoryHandler.Children)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", categoryHandler.Products)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", authHandler.Me)

	// Órdenes del usuario (protegido)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Log)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Show)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Administración de categorías. El listado de borradas solo exige
	// autenticación (cualquier rol); las mutaciones exigen admin.
	admin := protected.Group("/admin")
	admin.Get("/categories/trashed", categoryHandler.Trashed)

	adminCategories := admin.Group("/categories", RequireRole(entity.RoleAdmin))
	adminCategories.Post("/", categoryHandler.Create)
	adminCategories.Put("/:id", categoryHandler.Update)
	adminCategories.Delete("/:id", categoryHandler.Delete)
}
