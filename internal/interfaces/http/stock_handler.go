package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-micro/internal/application/dto"
	"github.com/tu-usuario/inventory-micro/internal/application/inventory"
	"github.com/tu-usuario/inventory-micro/internal/application/usecase"
	"github.com/tu-usuario/inventory-micro/internal/domain"
)

// StockHandler expone las mutaciones de stock y su historial.
type StockHandler struct {
	uc *inventory.StockUseCase
}

func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// UpdateStock aplica un increase/decrease sobre un producto de la empresa
// del token y registra la entrada de historial.
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	product, err := h.uc.UpdateStock(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.UpdateStockResponse{
		Message: "Stock updated",
		Product: *usecase.ToProductResponse(product),
	})
}

// History devuelve el historial de movimientos de un producto.
func (h *StockHandler) History(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	out, err := h.uc.History(c.Context(), GetCompanyID(c), productID, limit, offset)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// stockError mapea los errores de dominio del motor de stock a respuestas HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId, amount (> 0) y direction (increase|decrease) son requeridos"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_NEGATIVE", Message: "stock cannot go negative"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto no pertenece a tu empresa"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token is not valid"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
