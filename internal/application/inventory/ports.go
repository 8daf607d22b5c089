package inventory

import (
	"context"

	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del stock y el
// insert del log son atómicos: o ambos quedan, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
