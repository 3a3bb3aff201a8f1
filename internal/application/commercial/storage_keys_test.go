package commercial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Las claves de almacenamiento son determinísticas por diseño: regenerar un
// documento siempre sobreescribe el mismo slot. Estos tests fijan el formato
// exacto de las claves; cambiarlo deja huérfanos todos los PDFs ya subidos.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildInvoiceS3Key_Orden(t *testing.T) {
	key := BuildInvoiceS3Key("Acme Events", entity.ContextTypeOrder, "INV-20260415-001")
	assert.Equal(t, "invoices/acme-events/INV-20260415-001.pdf", key)
}

func TestBuildInvoiceS3Key_SolicitudConSegmentoPropio(t *testing.T) {
	key := BuildInvoiceS3Key("Acme Events", entity.ContextTypeServiceRequest, "INV-20260415-002")
	assert.Equal(t, "invoices/acme-events/service-requests/INV-20260415-002.pdf", key,
		"los documentos de orden y de solicitud de la misma empresa no deben colisionar")
}

func TestBuildCostEstimateS3Key_Orden(t *testing.T) {
	key := BuildCostEstimateS3Key("Acme Events", entity.ContextTypeOrder, "ORD-2026-0144", AudienceSellSide)
	assert.Equal(t, "cost-estimates/acme-events/ORD-2026-0144.pdf", key)
}

func TestBuildCostEstimateS3Key_Solicitud(t *testing.T) {
	key := BuildCostEstimateS3Key("Acme Events", entity.ContextTypeServiceRequest, "SRV-2026-0012", AudienceSellSide)
	assert.Equal(t, "cost-estimates/acme-events/service-requests/SRV-2026-0012.pdf", key)
}

// TestBuildCostEstimateS3Key_LadoCompraConSlotPropio verifica que el documento
// interno nunca comparte clave con el que ve el cliente: un render lado-compra
// no debe pisar el PDF lado-venta.
func TestBuildCostEstimateS3Key_LadoCompraConSlotPropio(t *testing.T) {
	sell := BuildCostEstimateS3Key("Acme Events", entity.ContextTypeOrder, "ORD-2026-0144", AudienceSellSide)
	buy := BuildCostEstimateS3Key("Acme Events", entity.ContextTypeOrder, "ORD-2026-0144", AudienceBuySide)

	assert.NotEqual(t, sell, buy)
	assert.Equal(t, "cost-estimates/acme-events/ORD-2026-0144-interna.pdf", buy)
}

// ── slugify ───────────────────────────────────────────────────────────────────

func TestSlugify_PliegaAcentosYEnes(t *testing.T) {
	assert.Equal(t, "camion-nino", slugify("Camión Niño"))
	assert.Equal(t, "nandu-2000", slugify("Ñandú 2000"))
	assert.Equal(t, "produccion-logistica", slugify("Producción & Logística"))
}

func TestSlugify_ColapsaNoAlfanumericos(t *testing.T) {
	assert.Equal(t, "acme-events-s-a-s", slugify("Acme   Events, S.A.S."))
	assert.Equal(t, "eventos-2026", slugify("--Eventos-- (2026)"))
}

func TestSlugify_NombreVacioCaeAlPlaceholder(t *testing.T) {
	assert.Equal(t, "sin-nombre", slugify(""))
	assert.Equal(t, "sin-nombre", slugify("  ¡¡¡  "))
}
