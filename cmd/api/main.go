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

	"github.com/jpcardoso/almoxarifado-api/internal/application/auth"
	"github.com/jpcardoso/almoxarifado-api/internal/application/fleet"
	"github.com/jpcardoso/almoxarifado-api/internal/application/inventory"
	"github.com/jpcardoso/almoxarifado-api/internal/application/reports"
	"github.com/jpcardoso/almoxarifado-api/internal/application/sales"
	"github.com/jpcardoso/almoxarifado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jpcardoso/almoxarifado-api/internal/interfaces/http"
	"github.com/jpcardoso/almoxarifado-api/pkg/config"
	"github.com/jpcardoso/almoxarifado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	flowRepo := postgres.NewDeliveryFlowRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	itemUC := inventory.NewItemUseCase(itemRepo, movRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, registerMovementUC)
	fleetUC := fleet.NewFleetUseCase(flowRepo, vehicleRepo)
	reportUC := reports.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almoxarifado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		SaleUC:           saleUC,
		FleetUC:          fleetUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
		Logger:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
