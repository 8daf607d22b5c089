package repository

import (
	"context"

	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve (nil, nil) si no existe. El email es único global,
	// por eso el login puede buscar sin company.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
