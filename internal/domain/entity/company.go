package entity

import "time"

// Company representa una organización/tenant del sistema. Es la frontera de
// aislamiento: todo Product y StockLog pertenece a exactamente una Company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
