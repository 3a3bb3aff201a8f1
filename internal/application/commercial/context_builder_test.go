package commercial

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

func buildTestGraph() (*fakeOrderRepo, *fakeRequestRepo, *fakeCompanyRepo, *fakePricingRepo, *fakeLineItemRepo) {
	starts := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	ends := starts.Add(6 * time.Hour)
	orderRepo := &fakeOrderRepo{order: &entity.Order{
		ID:               "ord-1",
		PlatformID:       "plat-1",
		CompanyID:        "co-1",
		ReferenceID:      "ORD-2026-0144",
		Status:           entity.OrderConfirmed,
		CommercialStatus: entity.CommercialQuoteApproved,
		EventName:        "Lanzamiento Q2",
		VenueName:        "Centro de Convenciones",
		VenueCity:        "Bogotá",
		StartsAt:         &starts,
		EndsAt:           &ends,
	}}
	requestRepo := &fakeRequestRepo{request: &entity.ServiceRequest{
		ID:               "req-1",
		PlatformID:       "plat-1",
		CompanyID:        "co-1",
		ReferenceID:      "SRV-2026-0012",
		Status:           entity.RequestApproved,
		BillingMode:      entity.BillingInternalOnly,
		CommercialStatus: entity.CommercialInternal,
	}}
	companyRepo := &fakeCompanyRepo{company: &entity.Company{
		ID:           "co-1",
		PlatformID:   "plat-1",
		Name:         "Acme Events",
		TaxID:        "900123456-1",
		ContactName:  "Laura Pérez",
		ContactEmail: "laura@acme.example",
		Phone:        "3001234567",
	}}
	pricingRepo := &fakePricingRepo{record: &entity.PricingRecord{
		ID:            "pr-1",
		PlatformID:    "plat-1",
		BaseOpsTotal:  decimal.NewFromInt(1000),
		TransportRate: decimal.NewFromInt(200),
		CatalogTotal:  decimal.NewFromInt(50),
		MarginPercent: decimal.NewFromInt(10),
	}}
	lineItemRepo := &fakeLineItemRepo{}
	return orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo
}

func TestBuildOrderContext_ProyeccionCompleta(t *testing.T) {
	orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo := buildTestGraph()
	b := NewContextBuilder(orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo)

	c, err := b.BuildOrderContext(context.Background(), "ord-1", "plat-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ContextTypeOrder, c.ContextType)
	assert.Equal(t, "ORD-2026-0144", c.ReferenceID)
	assert.Equal(t, entity.BillingClientBillable, c.BillingMode,
		"las órdenes siempre se facturan al cliente")
	assert.Equal(t, "Acme Events", c.Company.Name)
	assert.True(t, c.Pricing.Summary.FinalTotal.Equal(decimal.NewFromInt(1375)),
		"el total final se deriva siempre del motor, nunca se lee persistido")
}

// TestBuildOrderContext_CadenaDeFallbackDeContacto verifica la cadena
// entidad -> empresa -> "N/A" campo por campo.
func TestBuildOrderContext_CadenaDeFallbackDeContacto(t *testing.T) {
	orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo := buildTestGraph()
	// La orden trae email propio pero no nombre; la empresa no tiene teléfono.
	orderRepo.order.ContactName = ""
	orderRepo.order.ContactEmail = "produccion@acme.example"
	orderRepo.order.ContactPhone = ""
	companyRepo.company.Phone = ""
	b := NewContextBuilder(orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo)

	c, err := b.BuildOrderContext(context.Background(), "ord-1", "plat-1")

	require.NoError(t, err)
	assert.Equal(t, "Laura Pérez", c.Contact.Name, "nombre ausente cae a la empresa")
	assert.Equal(t, "produccion@acme.example", c.Contact.Email, "el email propio gana")
	assert.Equal(t, "N/A", c.Contact.Phone, "sin teléfono en ningún nivel cae a N/A")
}

func TestBuildOrderContext_OrdenInexistente(t *testing.T) {
	_, requestRepo, companyRepo, pricingRepo, lineItemRepo := buildTestGraph()
	b := NewContextBuilder(&fakeOrderRepo{}, requestRepo, companyRepo, pricingRepo, lineItemRepo)

	_, err := b.BuildOrderContext(context.Background(), "ord-x", "plat-1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBuildOrderContext_SinRegistroDePrecios(t *testing.T) {
	orderRepo, requestRepo, companyRepo, _, lineItemRepo := buildTestGraph()
	b := NewContextBuilder(orderRepo, requestRepo, companyRepo, &fakePricingRepo{}, lineItemRepo)

	_, err := b.BuildOrderContext(context.Background(), "ord-1", "plat-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una entidad sin registro de precios es un dato inconsistente, no un not found")
}

func TestBuildServiceRequestContext_VenuePlaceholder(t *testing.T) {
	orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo := buildTestGraph()
	b := NewContextBuilder(orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo)

	c, err := b.BuildServiceRequestContext(context.Background(), "req-1", "plat-1")

	require.NoError(t, err)
	assert.Equal(t, entity.ContextTypeServiceRequest, c.ContextType)
	assert.Equal(t, entity.BillingInternalOnly, c.BillingMode)
	assert.Equal(t, "Service Request", c.Venue.Name)
	assert.Equal(t, "N/A", c.Venue.City, "las solicitudes no tienen venue: placeholders estables")
}

func TestBuild_TipoDeContextoDesconocido(t *testing.T) {
	orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo := buildTestGraph()
	b := NewContextBuilder(orderRepo, requestRepo, companyRepo, pricingRepo, lineItemRepo)

	_, err := b.Build(context.Background(), "ALGO_RARO", "x", "plat-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── normalización de líneas ───────────────────────────────────────────────────

func TestNormalizeLineItems_FiltraAnuladasYModosDesconocidos(t *testing.T) {
	items := []*entity.LineItem{
		{ID: "li-1", Quantity: decimal.NewFromInt(2), BuyTotal: decimal.NewFromInt(200), BillingMode: entity.LineBillable},
		{ID: "li-2", Quantity: decimal.NewFromInt(1), BuyTotal: decimal.NewFromInt(50), BillingMode: entity.LineBillable, Voided: true},
		{ID: "li-3", Quantity: decimal.NewFromInt(1), BuyTotal: decimal.NewFromInt(30), BillingMode: "DESCONOCIDO"},
		{ID: "li-4", Quantity: decimal.NewFromInt(1), BuyTotal: decimal.NewFromInt(80), BillingMode: entity.LineComplimentary},
	}

	out := normalizeLineItems(items, decimal.NewFromInt(10))

	require.Len(t, out, 2, "las anuladas y las de modo desconocido no participan")
	assert.Equal(t, "li-1", out[0].LineItemID)
	assert.Equal(t, "li-4", out[1].LineItemID)
	assert.True(t, out[0].SellTotal.Equal(decimal.NewFromInt(220)), "markup por línea aplicado")
	assert.True(t, out[0].SellUnitRate.Equal(decimal.NewFromInt(110)))
}

func TestNormalizeLineItems_CantidadCeroNoDividePorCero(t *testing.T) {
	items := []*entity.LineItem{
		{ID: "li-1", Quantity: decimal.Zero, BuyTotal: decimal.NewFromInt(100), BillingMode: entity.LineBillable},
	}

	out := normalizeLineItems(items, decimal.NewFromInt(10))

	require.Len(t, out, 1)
	assert.True(t, out[0].BuyUnitRate.IsZero(), "cantidad cero produce tarifa unitaria cero")
	assert.True(t, out[0].SellUnitRate.IsZero())
	assert.True(t, out[0].SellTotal.Equal(decimal.NewFromInt(110)),
		"el total de la línea sí conserva el markup")
}
