package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: el historial es append-only.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Create persiste una entrada del historial de stock.
func (r *StockLogRepo) Create(ctx context.Context, log *entity.StockLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_logs (id, product_id, company_id, delta, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		log.ID, log.ProductID, log.CompanyID, log.Delta, log.Note, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock log: %w", err)
	}
	return nil
}

// ListByProduct lista las entradas de un producto, más reciente primero.
func (r *StockLogRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]*entity.StockLog, error) {
	query := `
		SELECT id, product_id, company_id, delta, note, created_at
		FROM stock_logs WHERE product_id = $1
		ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLog
	for rows.Next() {
		var l entity.StockLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.CompanyID, &l.Delta, &l.Note, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
