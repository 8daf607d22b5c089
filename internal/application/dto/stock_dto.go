package dto

import "time"

// UpdateStockRequest entrada para mutar el stock de un producto.
// direction ∈ {increase, decrease}; amount debe ser positivo. Cualquier
// companyId enviado en el body se ignora: el tenant sale del token.
type UpdateStockRequest struct {
	ProductID string  `json:"productId" validate:"required,uuid"`
	Amount    int64   `json:"amount" validate:"required,gt=0"`
	Direction string  `json:"direction" validate:"required,oneof=increase decrease"`
	Note      *string `json:"note" validate:"omitempty,max=500"`
}

// UpdateStockResponse producto con el stock ya actualizado.
type UpdateStockResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// StockLogResponse una entrada del historial de stock.
type StockLogResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	CompanyID string    `json:"company_id"`
	Delta     int64     `json:"delta"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StockHistoryResponse historial de un producto, más reciente primero.
type StockHistoryResponse struct {
	ProductID string             `json:"product_id"`
	Entries   []StockLogResponse `json:"entries"`
}
