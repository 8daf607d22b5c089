package entity

import "time"

// Direcciones válidas para una actualización de stock.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

// StockLog es una entrada inmutable del historial de stock: un delta firmado
// por mutación exitosa. Append-only; nunca se actualiza ni se borra. El stock
// actual de un producto siempre es igual a su stock inicial más la suma de los
// deltas registrados.
type StockLog struct {
	ID        string
	ProductID string
	CompanyID string
	Delta     int64   // +amount para increase, -amount para decrease
	Note      *string // opcional
	CreatedAt time.Time
}
