package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/inventory-micro/internal/application/inventory"
	"github.com/tu-usuario/inventory-micro/internal/application/usecase"
	"github.com/tu-usuario/inventory-micro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventory-micro/internal/interfaces/http"
	"github.com/tu-usuario/inventory-micro/pkg/config"
	"github.com/tu-usuario/inventory-micro/pkg/logger"
)

func main() {
	cfg, err := config.Load(5002)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "product",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando servicio de productos")

	if cfg.JWT.IsDevFallbackSecret() && cfg.App.Env != "development" {
		log.Warn().Msg("JWT_SECRET usa el fallback de desarrollo fuera de development")
	}

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	logRepo := postgres.NewStockLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	stockUC := inventory.NewStockUseCase(txRunner, productRepo, logRepo)

	app := fiber.New(fiber.Config{
		AppName:      "product",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.SetupProductRoutes(app, httpRouter.ProductRouterDeps{
		ProductUseCase: productUC,
		StockUseCase:   stockUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("servicio de productos detenido")
}
