package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	PlatformID string `json:"platform_id"`
	CompanyID  string `json:"company_id,omitempty"` // vacío para personal de plataforma
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"` // por defecto CLIENT
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	PlatformID string `json:"platform_id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID         string    `json:"id"`
	PlatformID string    `json:"platform_id"`
	CompanyID  string    `json:"company_id,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse token + usuario para POST /api/auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
