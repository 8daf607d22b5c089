package gateway

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/valyala/fasthttp"

	"github.com/tu-usuario/inventory-micro/internal/application/dto"
	ihttp "github.com/tu-usuario/inventory-micro/internal/interfaces/http"
	"github.com/tu-usuario/inventory-micro/pkg/config"
	"github.com/tu-usuario/inventory-micro/pkg/logger"
)

// Server es el punto de entrada único de la plataforma: valida el token en el
// borde y reenvía la petición al servicio interno que corresponda. La respuesta
// del upstream se releva tal cual (status y body).
type Server struct {
	cfg config.ServicesConfig
	log *logger.Logger
}

// NewServer construye el gateway.
func NewServer(cfg config.ServicesConfig, log *logger.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Register monta las rutas del gateway sobre la app.
func (s *Server) Register(app *fiber.App, jwtSecret string) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API Gateway is running"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "gateway"})
	})

	// Rutas de identidad: pasan sin token.
	app.All("/auth/*", s.forward(s.cfg.AuthURL))

	// Rutas de productos: el gateway corta aquí si el token no valida, sin
	// tocar el upstream. El Authorization se reenvía tal cual y el servicio
	// de productos lo vuelve a verificar.
	authed := app.Group("/", ihttp.AuthMiddleware(jwtSecret))
	authed.All("/products", s.forward(s.cfg.ProductURL))
	authed.All("/products/*", s.forward(s.cfg.ProductURL))
	authed.All("/stock/*", s.forward(s.cfg.ProductURL))
}

// forward reenvía la petición al servicio base, remontando la ruta pública
// bajo el prefijo /api que usan los servicios internos.
func (s *Server) forward(base string) fiber.Handler {
	timeout := time.Duration(s.cfg.ForwardTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return func(c *fiber.Ctx) error {
		target := base + "/api" + c.Path()
		if qs := string(c.Request().URI().QueryString()); qs != "" {
			target += "?" + qs
		}

		if err := proxy.DoTimeout(c, target, timeout); err != nil {
			s.log.Error().Err(err).Str("target", target).Msg("upstream request failed")
			if errors.Is(err, fasthttp.ErrTimeout) {
				return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "UPSTREAM_TIMEOUT", Message: "upstream service timed out"})
			}
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: "upstream service unavailable"})
		}
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}
