package dto

import "time"

// RegisterRequest entrada para registro público (rol siempre "user").
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Telefono string `json:"telefono" validate:"required"`
}

// CreateAdminRequest entrada para crear un admin (solo el superadmin).
type CreateAdminRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Telefono string `json:"telefono" validate:"required"`
}

// LoginRequest entrada para login (solo admins tienen flujo de login).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"_id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CheckAdminResponse salida de GET /auth/check-admin. Nunca es error: sin
// sesión o ante fallo de infraestructura devuelve isAdmin=false.
type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
