package entity

import "time"

// Roles válidos para User.
// ADMIN y STAFF son personal de la plataforma; CLIENT pertenece a una empresa
// cliente; LOGISTICS es personal de bodega sin visibilidad comercial (márgenes).
const (
	RoleAdmin     = "ADMIN"
	RoleStaff     = "STAFF"
	RoleClient    = "CLIENT"
	RoleLogistics = "LOGISTICS"
)

// User representa un usuario del sistema. CompanyID queda vacío para personal
// interno de la plataforma (ADMIN, STAFF, LOGISTICS).
type User struct {
	ID           string
	PlatformID   string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
