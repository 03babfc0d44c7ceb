package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoque-pro/estoque-api/internal/application/auth"
	"github.com/estoque-pro/estoque-api/internal/application/purchase"
	"github.com/estoque-pro/estoque-api/internal/application/report"
	"github.com/estoque-pro/estoque-api/internal/application/stock"
	"github.com/estoque-pro/estoque-api/internal/application/usecase"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	PurchaseUC *purchase.UseCase
	StockUC    *stock.UseCase
	ReportUC   *report.UseCase
	AuthUC     *auth.UseCase
	Blacklist  auth.TokenBlacklist
	JWTSecret  string
}

// Router registra as rotas da API. Login é público; o resto exige Bearer
// Token; mutações de pedidos, relatórios e usuários exigem papel admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token válido e não revogado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Blacklist))
	protected.Post("/auth/logout", authHandler.Logout)

	admin := RequireRole(entity.RoleAdmin)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Stock ledger
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/:product_id/entries", stockHandler.RegisterEntry)
	stockGroup.Get("/:product_id/movements", stockHandler.ListByProduct)

	// Purchases (mutações exigem admin)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", admin, purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/suggestions", purchaseHandler.Suggestions)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Post("/:id/complete", admin, purchaseHandler.Complete)
	purchases.Post("/:id/cancel", admin, purchaseHandler.Cancel)
	purchases.Delete("/:id", admin, purchaseHandler.Delete)

	// Reports (admin)
	reports := protected.Group("/reports", admin)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Generate)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id/download", reportHandler.Download)

	// Users (leitura do próprio perfil liberada; o resto admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Post("/", admin, userHandler.Create)
	users.Get("/", admin, userHandler.List)
	users.Get("/:id", admin, userHandler.GetByID)
	users.Put("/:id", admin, userHandler.Update)
	users.Delete("/:id", admin, userHandler.Delete)
}
