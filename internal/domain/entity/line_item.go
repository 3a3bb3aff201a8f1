package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de facturación de una línea.
const (
	LineBillable      = "BILLABLE"
	LineComplimentary = "COMPLIMENTARY"
)

// LineItem es una línea de una entidad comercial (activo alquilado, servicio,
// cargo manual). Las líneas anuladas (Voided) se conservan para auditoría pero
// no participan en cotizaciones ni facturas.
type LineItem struct {
	ID          string
	PlatformID  string
	ContextType string // ORDER | SERVICE_REQUEST
	ContextID   string
	Description string
	Quantity    decimal.Decimal
	BuyTotal    decimal.Decimal // costo lado-compra de la línea completa
	Category    string
	BillingMode string // BILLABLE | COMPLIMENTARY
	Voided      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
