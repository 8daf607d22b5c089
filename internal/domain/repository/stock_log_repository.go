package repository

import (
	"context"

	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
)

// StockLogRepository define el puerto de persistencia para el historial de
// stock. Solo inserta y lista: las entradas son inmutables, no existe
// Update ni Delete.
type StockLogRepository interface {
	Create(ctx context.Context, log *entity.StockLog) error
	ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockLog, error)
}
