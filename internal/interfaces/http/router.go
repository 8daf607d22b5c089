package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-micro/internal/application/auth"
	"github.com/tu-usuario/inventory-micro/internal/application/inventory"
	"github.com/tu-usuario/inventory-micro/internal/application/usecase"
)

// AuthRouterDeps dependencias del servicio de identidad.
type AuthRouterDeps struct {
	AuthUseCase *auth.AuthUseCase
}

// SetupAuthRoutes monta las rutas públicas del servicio de identidad.
func SetupAuthRoutes(app *fiber.App, deps AuthRouterDeps) {
	app.Get("/health", healthHandler("auth"))

	h := NewAuthHandler(deps.AuthUseCase)
	api := app.Group("/api/auth")
	api.Post("/register", h.Register)
	api.Post("/login", h.Login)
}

// ProductRouterDeps dependencias del servicio de productos.
type ProductRouterDeps struct {
	ProductUseCase *usecase.ProductUseCase
	StockUseCase   *inventory.StockUseCase
	JWTSecret      string
}

// SetupProductRoutes monta las rutas del servicio de productos. Todas van
// detrás del middleware de token: el companyId de cada operación sale de los
// claims, nunca del body.
func SetupProductRoutes(app *fiber.App, deps ProductRouterDeps) {
	app.Get("/health", healthHandler("product"))

	ph := NewProductHandler(deps.ProductUseCase)
	sh := NewStockHandler(deps.StockUseCase)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	api.Post("/products", ph.Create)
	api.Get("/products", ph.List)
	api.Post("/stock/update", sh.UpdateStock)
	api.Get("/stock/history", sh.History)
}

func healthHandler(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
