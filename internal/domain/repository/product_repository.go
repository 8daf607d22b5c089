package repository

import (
	"context"

	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción; serializa los updates concurrentes
	// sobre el mismo producto sin bloquear productos distintos.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStock escribe el nuevo valor absoluto de stock. El caller ya validó
	// la no-negatividad bajo el lock de fila.
	UpdateStock(ctx context.Context, id string, stock int64) error
	// ListByCompany devuelve solo productos de la empresa, en orden estable
	// (created_at DESC, id). Los callers no deben depender del orden.
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
}
