package commercial

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/pricing"
)

// buildTestContext arma un contexto normalizado con dos líneas activas:
// compra 400 + 100 = 500, margen 10% -> venta 440 + 110 = 550.
func buildTestContext() *Context {
	buy := pricing.Input{
		BaseOpsTotal:  decimal.NewFromInt(500),
		TransportRate: decimal.NewFromInt(200),
		CatalogTotal:  decimal.NewFromInt(50),
		CustomTotal:   decimal.Zero,
		MarginPercent: decimal.NewFromInt(10),
	}
	return &Context{
		ContextType:       entity.ContextTypeOrder,
		ContextID:         "ord-1",
		PlatformID:        "plat-1",
		ReferenceID:       "ORD-2026-0144",
		OperationalStatus: entity.OrderConfirmed,
		CommercialStatus:  entity.CommercialQuoteApproved,
		BillingMode:       entity.BillingClientBillable,
		Company:           CompanyBlock{ID: "co-1", Name: "Acme Events"},
		Pricing:           NormalizedPricing{Buy: buy, Summary: pricing.Compute(buy)},
		LineItems: []NormalizedLineItem{
			{
				LineItemID:   "li-1",
				Description:  "Carpa 10x10",
				Quantity:     decimal.NewFromInt(4),
				Category:     "CARPAS",
				BillingMode:  entity.LineBillable,
				BuyTotal:     decimal.NewFromInt(400),
				SellTotal:    decimal.NewFromInt(440),
				BuyUnitRate:  decimal.NewFromInt(100),
				SellUnitRate: decimal.NewFromInt(110),
			},
			{
				LineItemID:   "li-2",
				Description:  "Tarima modular",
				Quantity:     decimal.NewFromInt(1),
				Category:     "TARIMAS",
				BillingMode:  entity.LineComplimentary,
				BuyTotal:     decimal.NewFromInt(100),
				SellTotal:    decimal.NewFromInt(110),
				BuyUnitRate:  decimal.NewFromInt(100),
				SellUnitRate: decimal.NewFromInt(110),
			},
		},
	}
}

// TestBuildDocumentPayload_SubTotalIgualaSumaDeLineas fija el invariante del
// payload: el subtotal de líneas se recomputa de las líneas emitidas, por lo
// que siempre iguala la suma de sus campos Total.
func TestBuildDocumentPayload_SubTotalIgualaSumaDeLineas(t *testing.T) {
	for _, audience := range []Audience{AudienceSellSide, AudienceBuySide} {
		p := BuildDocumentPayload(buildTestContext(), audience, DocumentInvoice, "INV-20260415-001", "user-1")

		sum := decimal.Zero
		for _, li := range p.LineItems {
			sum = sum.Add(li.Total)
		}
		assert.True(t, p.LineItemsSubTotal.Equal(sum),
			"audiencia %s: subtotal %s != suma de líneas %s", audience, p.LineItemsSubTotal, sum)
	}
}

func TestBuildDocumentPayload_AudienciaVentaUsaMontosDeVenta(t *testing.T) {
	p := BuildDocumentPayload(buildTestContext(), AudienceSellSide, DocumentInvoice, "INV-20260415-001", "user-1")

	require.Len(t, p.LineItems, 2)
	assert.True(t, p.LineItems[0].Total.Equal(decimal.NewFromInt(440)), "total venta de la línea")
	assert.True(t, p.LineItems[0].UnitRate.Equal(decimal.NewFromInt(110)), "tarifa unitaria venta")
	assert.True(t, p.LineItemsSubTotal.Equal(decimal.NewFromInt(550)))

	// Totales lado-venta del motor: base 550, transporte 220, catálogo 55.
	assert.True(t, p.Pricing.BaseOpsTotal.Equal(decimal.NewFromInt(550)))
	assert.True(t, p.Pricing.TransportTotal.Equal(decimal.NewFromInt(220)))
	assert.True(t, p.Pricing.ServiceFee.Equal(decimal.NewFromInt(55)))
	assert.True(t, p.Pricing.FinalTotal.Equal(decimal.NewFromInt(825)),
		"total final venta = 550 + 220 + 55")
}

// TestBuildDocumentPayload_AudienciaCompraSinMargen verifica el documento
// interno: montos lado-compra puros, tarifa de servicio a costo y total final
// igual al subtotal de compra.
func TestBuildDocumentPayload_AudienciaCompraSinMargen(t *testing.T) {
	p := BuildDocumentPayload(buildTestContext(), AudienceBuySide, DocumentCostEstimate, "ORD-2026-0144", "user-1")

	require.Len(t, p.LineItems, 2)
	assert.True(t, p.LineItems[0].Total.Equal(decimal.NewFromInt(400)), "total compra de la línea")
	assert.True(t, p.LineItems[0].UnitRate.Equal(decimal.NewFromInt(100)), "tarifa unitaria compra")
	assert.True(t, p.LineItemsSubTotal.Equal(decimal.NewFromInt(500)))

	assert.True(t, p.Pricing.BaseOpsTotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, p.Pricing.TransportTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, p.Pricing.ServiceFee.Equal(decimal.NewFromInt(50)),
		"tarifa de servicio a costo: catálogo + custom compra")
	assert.True(t, p.Pricing.FinalTotal.Equal(decimal.NewFromInt(750)),
		"el documento interno nunca muestra un total con margen")
}

func TestBuildDocumentPayload_CamposDeIdentidad(t *testing.T) {
	p := BuildDocumentPayload(buildTestContext(), AudienceSellSide, DocumentInvoice, "INV-20260415-001", "user-1")

	assert.Equal(t, DocumentInvoice, p.DocumentKind)
	assert.Equal(t, "INV-20260415-001", p.DocumentNumber)
	assert.Equal(t, entity.ContextTypeOrder, p.ContextType)
	assert.Equal(t, "ORD-2026-0144", p.ReferenceID)
	assert.Equal(t, "user-1", p.GeneratedBy)
	assert.False(t, p.IssuedAt.IsZero(), "la fecha de emisión siempre viene puesta")
}
