package dto

import (
	"encoding/json"
	"time"
)

// StockValue acepta el campo stock con tolerancia: un valor no numérico en el
// JSON cuenta como 0 en lugar de rechazar el body completo. Los negativos sí
// llegan al use case, que los rechaza.
type StockValue int64

// UnmarshalJSON implementa la tolerancia: número → valor, cualquier otra cosa → 0.
func (s *StockValue) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		*s = 0
		return nil
	}
	*s = StockValue(n)
	return nil
}

// CreateProductRequest entrada para crear un producto. No lleva company: la
// identidad de tenant sale siempre del token verificado.
type CreateProductRequest struct {
	Name  string     `json:"name" validate:"required,min=1,max=200"`
	Stock StockValue `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos de la empresa del caller.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
