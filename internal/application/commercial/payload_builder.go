package commercial

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/domain/pricing"
)

// Audiencia del documento: define si los montos son lado-venta (cliente) o
// lado-compra (interno).
type Audience string

const (
	AudienceSellSide Audience = "SELL_SIDE"
	AudienceBuySide  Audience = "BUY_SIDE"
)

// Clases de documento comercial.
const (
	DocumentInvoice      = "INVOICE"
	DocumentCostEstimate = "COST_ESTIMATE"
)

// PayloadLineItem línea con los montos de la audiencia ya seleccionados.
type PayloadLineItem struct {
	Description string
	Quantity    decimal.Decimal
	Category    string
	BillingMode string
	UnitRate    decimal.Decimal
	Total       decimal.Decimal
}

// PayloadPricing bloque de totales con los montos de la audiencia seleccionados.
type PayloadPricing struct {
	BaseOpsTotal   decimal.Decimal
	TransportTotal decimal.Decimal
	CatalogTotal   decimal.Decimal
	CustomTotal    decimal.Decimal
	ServiceFee     decimal.Decimal
	SubTotal       decimal.Decimal
	FinalTotal     decimal.Decimal
}

// DocumentPayload es exactamente lo que consume el renderizador de PDF y los
// constructores de claves de almacenamiento: nada del esquema de persistencia
// se filtra aquí.
type DocumentPayload struct {
	DocumentKind      string // INVOICE | COST_ESTIMATE
	DocumentNumber    string // número de factura o referencia de la entidad
	Audience          Audience
	ContextType       string
	ReferenceID       string
	IssuedAt          time.Time
	GeneratedBy       string
	Company           CompanyBlock
	Contact           ContactBlock
	Venue             VenueBlock
	Timeline          TimelineBlock
	LineItems         []PayloadLineItem
	LineItemsSubTotal decimal.Decimal // recomputado de las líneas emitidas
	Pricing           PayloadPricing
}

// BuildDocumentPayload proyecta un contexto normalizado al payload del
// documento según la audiencia. El subtotal de líneas se recomputa de las
// líneas emitidas, por lo que siempre iguala la suma de sus campos Total
// (invariante verificable).
func BuildDocumentPayload(c *Context, audience Audience, kind, documentNumber, generatedBy string) *DocumentPayload {
	lines := make([]PayloadLineItem, 0, len(c.LineItems))
	subTotal := decimal.Zero
	for _, li := range c.LineItems {
		unit, total := li.BuyUnitRate, li.BuyTotal
		if audience == AudienceSellSide {
			unit, total = li.SellUnitRate, li.SellTotal
		}
		lines = append(lines, PayloadLineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			Category:    li.Category,
			BillingMode: li.BillingMode,
			UnitRate:    unit,
			Total:       total,
		})
		subTotal = subTotal.Add(total)
	}

	return &DocumentPayload{
		DocumentKind:      kind,
		DocumentNumber:    documentNumber,
		Audience:          audience,
		ContextType:       c.ContextType,
		ReferenceID:       c.ReferenceID,
		IssuedAt:          time.Now(),
		GeneratedBy:       generatedBy,
		Company:           c.Company,
		Contact:           c.Contact,
		Venue:             c.Venue,
		Timeline:          c.Timeline,
		LineItems:         lines,
		LineItemsSubTotal: pricing.RoundCurrency(subTotal),
		Pricing:           pricingForAudience(c.Pricing, audience),
	}
}

func pricingForAudience(p NormalizedPricing, audience Audience) PayloadPricing {
	if audience == AudienceSellSide {
		return PayloadPricing{
			BaseOpsTotal:   p.Summary.SellLines.BaseOpsTotal,
			TransportTotal: p.Summary.SellLines.TransportTotal,
			CatalogTotal:   p.Summary.SellLines.CatalogTotal,
			CustomTotal:    p.Summary.SellLines.CustomTotal,
			ServiceFee:     p.Summary.ServiceFee,
			SubTotal:       p.Summary.LogisticsSubTotal,
			FinalTotal:     p.Summary.FinalTotal,
		}
	}
	return PayloadPricing{
		BaseOpsTotal:   pricing.RoundCurrency(p.Buy.BaseOpsTotal),
		TransportTotal: pricing.RoundCurrency(p.Buy.TransportRate),
		CatalogTotal:   pricing.RoundCurrency(p.Buy.CatalogTotal),
		CustomTotal:    pricing.RoundCurrency(p.Buy.CustomTotal),
		ServiceFee:     pricing.RoundCurrency(p.Buy.CatalogTotal.Add(p.Buy.CustomTotal)),
		SubTotal:       p.Summary.LogisticsSubTotal,
		FinalTotal:     p.Summary.BaseSubTotal,
	}
}
