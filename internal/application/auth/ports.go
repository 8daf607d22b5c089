package auth

import (
	"context"

	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

// RegisterTxRunner ejecuta el alta de empresa + primer usuario dentro de una
// transacción de BD, pasando repositorios atados a esa tx. Evita empresas
// huérfanas si el insert del usuario falla (p.ej. email duplicado).
type RegisterTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
