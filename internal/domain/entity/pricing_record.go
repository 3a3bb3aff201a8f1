package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRecord guarda los costos lado-compra de una entidad comercial
// (uno a uno por ContextType+ContextID). Los totales lado-venta nunca se
// persisten: se derivan siempre con el motor de precios.
type PricingRecord struct {
	ID             string
	PlatformID     string
	ContextType    string // ORDER | SERVICE_REQUEST
	ContextID      string
	BaseOpsTotal   decimal.Decimal
	TransportRate  decimal.Decimal // solo órdenes; cero en solicitudes
	CatalogTotal   decimal.Decimal
	CustomTotal    decimal.Decimal
	MarginPercent  decimal.Decimal // markup de la plataforma, >= 0
	EstimatePDFURL string          // última cotización generada (mutable pre-compromiso)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
