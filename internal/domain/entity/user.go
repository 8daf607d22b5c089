package entity

import "time"

// Roles válidos para User. El primer usuario de una empresa (registro) es admin.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, member
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
