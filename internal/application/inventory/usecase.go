package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-micro/internal/application/dto"
	"github.com/tu-usuario/inventory-micro/internal/domain"
	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

// StockUseCase es la única máquina de estados del stock: valida, aplica el
// chequeo de tenant, bloquea la fila del producto (SELECT FOR UPDATE vía
// GetForUpdate), rechaza transiciones a negativo y persiste stock + entrada de
// log en la misma transacción.
type StockUseCase struct {
	txRunner TxRunner
	logRepo  repository.StockLogRepository
	prodRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner, prodRepo repository.ProductRepository, logRepo repository.StockLogRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, prodRepo: prodRepo, logRepo: logRepo}
}

// UpdateStock aplica un delta al stock de un producto de la empresa del caller.
//
// Orden de chequeos (fijo): entrada → existencia → tenant → negatividad.
// El chequeo de tenant corre antes de cualquier mutación; un rechazo en
// cualquier punto no deja ni stock cambiado ni entrada de log (la tx se
// revierte completa).
func (uc *StockUseCase) UpdateStock(ctx context.Context, companyID string, in dto.UpdateStockRequest) (*entity.Product, error) {
	if companyID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.ProductID == "" || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var delta int64
	switch in.Direction {
	case entity.DirectionIncrease:
		delta = in.Amount
	case entity.DirectionDecrease:
		delta = -in.Amount
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var updated *entity.Product

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error {
		// Bloquea la fila del producto: dos updates concurrentes sobre el mismo
		// producto se serializan aquí; productos distintos no se bloquean entre sí.
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}

		newStock := product.Stock + delta
		if newStock < 0 {
			return domain.ErrInsufficientStock
		}

		if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		if err := logRepo.Create(ctx, &entity.StockLog{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			CompanyID: companyID,
			Delta:     delta,
			Note:      in.Note,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		product.Stock = newStock
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// History devuelve el historial de stock de un producto de la empresa del
// caller, más reciente primero.
func (uc *StockUseCase) History(ctx context.Context, companyID, productID string, limit, offset int) (*dto.StockHistoryResponse, error) {
	if companyID == "" {
		return nil, domain.ErrUnauthorized
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.prodRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	logs, err := uc.logRepo.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, dto.StockLogResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			CompanyID: l.CompanyID,
			Delta:     l.Delta,
			Note:      l.Note,
			CreatedAt: l.CreatedAt,
		})
	}
	return &dto.StockHistoryResponse{ProductID: productID, Entries: entries}, nil
}
