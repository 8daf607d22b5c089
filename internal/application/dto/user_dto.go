package dto

import "time"

// RegisterRequest entrada para registro: crea la empresa y su primer usuario (admin).
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"companyName" validate:"required,min=1,max=200"`
}

// RegisterResponse salida del registro: usuario (sin hash) y empresa creados.
type RegisterResponse struct {
	Message string          `json:"message"`
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token listo para el header Authorization.
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"` // "Bearer <jwt>"
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
