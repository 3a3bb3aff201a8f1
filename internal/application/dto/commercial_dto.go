package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/domain/policy"
)

// PricingInput componentes lado-compra al crear una entidad comercial. Los
// montos viajan como cadenas decimales; campos ausentes o ilegibles valen cero.
type PricingInput struct {
	BaseOpsTotal  string `json:"base_ops_total"`
	TransportRate string `json:"transport_rate,omitempty"`
	CatalogTotal  string `json:"catalog_total,omitempty"`
	CustomTotal   string `json:"custom_total,omitempty"`
	MarginPercent string `json:"margin_percent"`
}

// LineItemInput línea al crear una entidad comercial.
type LineItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	BuyTotal    decimal.Decimal `json:"buy_total"`
	Category    string          `json:"category,omitempty"`
	BillingMode string          `json:"billing_mode,omitempty"` // por defecto BILLABLE
}

// CreateOrderRequest body para POST /api/orders. La orden, su registro de
// precios y sus líneas se crean en una sola transacción.
type CreateOrderRequest struct {
	CompanyID    string          `json:"company_id"`
	EventName    string          `json:"event_name"`
	VenueName    string          `json:"venue_name,omitempty"`
	VenueAddress string          `json:"venue_address,omitempty"`
	VenueCity    string          `json:"venue_city,omitempty"`
	ContactName  string          `json:"contact_name,omitempty"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	StartsAt     *time.Time      `json:"starts_at,omitempty"`
	EndsAt       *time.Time      `json:"ends_at,omitempty"`
	Pricing      PricingInput    `json:"pricing"`
	LineItems    []LineItemInput `json:"line_items,omitempty"`
}

// CreateServiceRequestRequest body para POST /api/service-requests.
type CreateServiceRequestRequest struct {
	CompanyID    string          `json:"company_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	BillingMode  string          `json:"billing_mode"` // INTERNAL_ONLY | CLIENT_BILLABLE
	ContactName  string          `json:"contact_name,omitempty"`
	ContactEmail string          `json:"contact_email,omitempty"`
	ContactPhone string          `json:"contact_phone,omitempty"`
	RequestedFor *time.Time      `json:"requested_for,omitempty"`
	Pricing      PricingInput    `json:"pricing"`
	LineItems    []LineItemInput `json:"line_items,omitempty"`
}

// TransitionRequest body para los endpoints de cambio de estado.
type TransitionRequest struct {
	Target string `json:"target"`
}

// LineItemView línea normalizada en respuestas. Los campos lado-venta se
// omiten para roles sin visibilidad comercial.
type LineItemView struct {
	LineItemID   string           `json:"line_item_id"`
	Description  string           `json:"description"`
	Quantity     decimal.Decimal  `json:"quantity"`
	Category     string           `json:"category,omitempty"`
	BillingMode  string           `json:"billing_mode"`
	BuyTotal     decimal.Decimal  `json:"buy_total"`
	BuyUnitRate  decimal.Decimal  `json:"buy_unit_rate"`
	SellTotal    *decimal.Decimal `json:"sell_total,omitempty"`
	SellUnitRate *decimal.Decimal `json:"sell_unit_rate,omitempty"`
}

// CommercialContextResponse proyección de un contexto comercial para la API.
type CommercialContextResponse struct {
	ContextType       string             `json:"context_type"` // ORDER | SERVICE_REQUEST
	ContextID         string             `json:"context_id"`
	ReferenceID       string             `json:"reference_id"`
	OperationalStatus string             `json:"operational_status"`
	CommercialStatus  string             `json:"commercial_status"`
	CompanyName       string             `json:"company_name"`
	ContactName       string             `json:"contact_name"`
	ContactEmail      string             `json:"contact_email"`
	VenueName         string             `json:"venue_name"`
	TimelineStart     time.Time          `json:"timeline_start"`
	TimelineEnd       time.Time          `json:"timeline_end"`
	Pricing           policy.PricingView `json:"pricing"`
	LineItems         []LineItemView     `json:"line_items"`
}
