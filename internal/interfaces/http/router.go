package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ecopack/ecopack-api/internal/application/auth"
	"github.com/ecopack/ecopack-api/internal/application/dashboard"
	"github.com/ecopack/ecopack-api/internal/application/ledger"
	"github.com/ecopack/ecopack-api/internal/application/usecase"
	"github.com/ecopack/ecopack-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	BagUC       *usecase.BagUseCase
	ClientUC    *usecase.ClientUseCase
	PlaceOrder  *ledger.PlaceOrderUseCase
	OrderUC     *usecase.OrderUseCase
	FeedbackUC  *usecase.FeedbackUseCase
	UserUC      *usecase.UserUseCase
	DashboardUC *dashboard.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Bags (protegido)
	bags := protected.Group("/bags")
	bagHandler := NewBagHandler(deps.BagUC)
	bags.Get("/", bagHandler.List)
	bags.Post("/", bagHandler.Create)
	bags.Get("/:id", bagHandler.GetByID)
	bags.Put("/:id", bagHandler.Update)
	bags.Delete("/:id", bagHandler.Delete)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Orders (protegido; inmutables, sin update ni delete)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)

	// Feedback: crear es de cualquier autenticado; listar es vista admin.
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	protected.Post("/feedback", feedbackHandler.Create)
	protected.Get("/feedback", RequireCapability(policy.CapViewFeedbackLog), feedbackHandler.List)

	// Users (vista admin)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users", RequireCapability(policy.CapViewUserList), userHandler.List)
}
