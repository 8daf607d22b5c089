package entity

import "time"

// Product representa un producto del inventario de una empresa.
// Stock es un contador entero no negativo; solo muta vía la operación de
// actualización de stock (nunca por escritura directa), y CompanyID es
// inmutable después de la creación.
type Product struct {
	ID        string
	CompanyID string
	Name      string
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
