package entity

import "time"

// Estados operativos de una orden de alquiler (ciclo de cumplimiento).
const (
	OrderSubmitted  = "SUBMITTED"
	OrderQuoted     = "QUOTED"
	OrderConfirmed  = "CONFIRMED"
	OrderPicking    = "PICKING"
	OrderDispatched = "DISPATCHED"
	OrderDelivered  = "DELIVERED"
	OrderReturned   = "RETURNED"
	OrderClosed     = "CLOSED"
	OrderCancelled  = "CANCELLED"
)

// Order representa una orden de alquiler de activos para un evento.
// ReferenceID es el código legible por humanos (ej. ORD-2026-0144) que aparece
// en cotizaciones y correos.
type Order struct {
	ID               string
	PlatformID       string
	CompanyID        string
	ReferenceID      string
	Status           string // ver constantes Order*
	CommercialStatus string // ver constantes Commercial*
	EventName        string
	VenueName        string
	VenueAddress     string
	VenueCity        string
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	StartsAt         *time.Time // inicio del evento; nil = sin agenda aún
	EndsAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
