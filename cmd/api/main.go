package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ecopack/ecopack-api/internal/application/auth"
	appdashboard "github.com/ecopack/ecopack-api/internal/application/dashboard"
	"github.com/ecopack/ecopack-api/internal/application/ledger"
	"github.com/ecopack/ecopack-api/internal/application/usecase"
	"github.com/ecopack/ecopack-api/internal/infrastructure/postgres"
	httpRouter "github.com/ecopack/ecopack-api/internal/interfaces/http"
	"github.com/ecopack/ecopack-api/pkg/config"
	"github.com/ecopack/ecopack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	bagRepo := postgres.NewBagRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	feedbackRepo := postgres.NewFeedbackRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	bagUC := usecase.NewBagUseCase(bagRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	placeOrderUC := ledger.NewPlaceOrderUseCase(txRunner, clientRepo, bagRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	feedbackUC := usecase.NewFeedbackUseCase(feedbackRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appdashboard.NewDashboardUseCase(dashboardRepo, cfg.Stock.LowThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ecopack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		BagUC:       bagUC,
		ClientUC:    clientUC,
		PlaceOrder:  placeOrderUC,
		OrderUC:     orderUC,
		FeedbackUC:  feedbackUC,
		UserUC:      userUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
