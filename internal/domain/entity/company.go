package entity

import "time"

// Company representa una empresa cliente de la plataforma (multi-tenant:
// cada fila pertenece a un PlatformID).
type Company struct {
	ID           string
	PlatformID   string
	Name         string
	TaxID        string // NIT o identificación fiscal
	ContactName  string
	ContactEmail string
	Phone        string
	Address      string
	Status       string // active, suspended, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
