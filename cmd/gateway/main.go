package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/inventory-micro/internal/gateway"
	"github.com/tu-usuario/inventory-micro/pkg/config"
	"github.com/tu-usuario/inventory-micro/pkg/logger"
)

func main() {
	cfg, err := config.Load(5000)
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "gateway",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("auth_url", cfg.Services.AuthURL).
		Str("product_url", cfg.Services.ProductURL).
		Msg("iniciando gateway")

	if cfg.JWT.IsDevFallbackSecret() && cfg.App.Env != "development" {
		log.Warn().Msg("JWT_SECRET usa el fallback de desarrollo fuera de development")
	}

	app := fiber.New(fiber.Config{
		AppName:      "gateway",
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	gw := gateway.NewServer(cfg.Services, log)
	gw.Register(app, cfg.JWT.Secret)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}
