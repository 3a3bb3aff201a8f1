package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mesharis-cell/platform-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestCompute_VectorExacto valida que el motor de precios produce los montos
// exactos esperados para un input de referencia conocido.
//
// Este test es el "canario en la mina" de toda la aritmética comercial: si
// alguien cambia el orden de redondeo, pasa del markup por línea al markup
// sobre el agregado o toca la fórmula de la tarifa de servicio, el test falla
// de inmediato.
//
// Vector calculado a mano (margen 10%):
//
//	compra:  base 1000.00 + transporte 200.00 + catálogo 50.00 + custom 0.00
//	venta:   base 1100.00 + transporte 220.00 + catálogo 55.00 + custom 0.00
//	tarifa de servicio   = 55.00   (venta catálogo + venta custom)
//	subtotal logístico   = 1250.00 (compra: base + transporte + catálogo)
//	subtotal compra      = 1250.00
//	total final          = 1375.00
//	monto de margen      = 125.00
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_VectorExacto(t *testing.T) {
	in := pricing.Input{
		BaseOpsTotal:  decimal.NewFromInt(1000),
		TransportRate: decimal.NewFromInt(200),
		CatalogTotal:  decimal.NewFromInt(50),
		CustomTotal:   decimal.Zero,
		MarginPercent: decimal.NewFromInt(10),
	}

	s := pricing.Compute(in)

	assertDecimal(t, "1100", s.SellLines.BaseOpsTotal, "venta base")
	assertDecimal(t, "220", s.SellLines.TransportTotal, "venta transporte")
	assertDecimal(t, "55", s.SellLines.CatalogTotal, "venta catálogo")
	assertDecimal(t, "0", s.SellLines.CustomTotal, "venta custom")
	assertDecimal(t, "55", s.ServiceFee, "tarifa de servicio")
	assertDecimal(t, "1250", s.LogisticsSubTotal, "subtotal logístico")
	assertDecimal(t, "1250", s.BaseSubTotal, "subtotal compra")
	assertDecimal(t, "1375", s.FinalTotal, "total final")
	assertDecimal(t, "125", s.MarginAmount, "monto de margen")
}

// TestCompute_MargenCero verifica que con margen 0% la venta iguala la compra y
// el monto de margen es cero.
func TestCompute_MargenCero(t *testing.T) {
	in := pricing.Input{
		BaseOpsTotal:  decimal.NewFromFloat(750.50),
		TransportRate: decimal.NewFromFloat(120.25),
		CatalogTotal:  decimal.NewFromFloat(33.33),
		CustomTotal:   decimal.NewFromFloat(10.00),
		MarginPercent: decimal.Zero,
	}

	s := pricing.Compute(in)

	assert.True(t, s.FinalTotal.Equal(s.BaseSubTotal),
		"con margen cero el total final debe igualar el subtotal compra")
	assertDecimal(t, "0", s.MarginAmount, "monto de margen con margen cero")
}

// TestCompute_MarkupPorLineaNoSobreAgregado fija la semántica del markup por
// componente: dos líneas de 0.01 con margen 25% venden 0.01 + 0.01 = 0.02,
// mientras que marcar el agregado daría 0.02 * 1.25 = 0.025 → 0.03. El motor
// debe producir 0.02.
func TestCompute_MarkupPorLineaNoSobreAgregado(t *testing.T) {
	in := pricing.Input{
		BaseOpsTotal:  decimal.NewFromFloat(0.01),
		TransportRate: decimal.NewFromFloat(0.01),
		MarginPercent: decimal.NewFromInt(25),
	}

	s := pricing.Compute(in)

	assertDecimal(t, "0.02", s.FinalTotal, "total final por línea")
}

// TestCompute_ComponentesEnCeroNoAportan verifica que los componentes ausentes
// no contaminan ningún total.
func TestCompute_ComponentesEnCeroNoAportan(t *testing.T) {
	in := pricing.Input{
		BaseOpsTotal:  decimal.NewFromInt(500),
		MarginPercent: decimal.NewFromInt(20),
	}

	s := pricing.Compute(in)

	assertDecimal(t, "600", s.FinalTotal, "total final solo con base")
	assertDecimal(t, "0", s.ServiceFee, "tarifa de servicio sin catálogo ni custom")
	assertDecimal(t, "500", s.LogisticsSubTotal, "subtotal logístico solo con base")
	assertDecimal(t, "100", s.MarginAmount, "monto de margen solo con base")
}

// ── primitivas monetarias ─────────────────────────────────────────────────────

func TestApplyMarginPerLine_VectorExacto(t *testing.T) {
	got := pricing.ApplyMarginPerLine(decimal.NewFromInt(100), decimal.NewFromFloat(12.5))
	assertDecimal(t, "112.5", got, "markup 12.5% sobre 100")
}

// TestApplyMarginPerLine_BaseNegativaPasa documenta que los valores negativos
// no se validan aquí: esa regla vive en la capa de política.
func TestApplyMarginPerLine_BaseNegativaPasa(t *testing.T) {
	got := pricing.ApplyMarginPerLine(decimal.NewFromInt(-100), decimal.NewFromInt(10))
	assertDecimal(t, "-110", got, "markup sobre base negativa")
}

func TestRoundCurrency_Idempotente(t *testing.T) {
	v := decimal.NewFromFloat(1234.5678)
	once := pricing.RoundCurrency(v)
	twice := pricing.RoundCurrency(once)

	assertDecimal(t, "1234.57", once, "redondeo a 2 decimales")
	assert.True(t, once.Equal(twice), "redondear dos veces debe ser idempotente")
}

func TestDecimalFromString_InvalidaProduceCero(t *testing.T) {
	assertDecimal(t, "0", pricing.DecimalFromString(""), "cadena vacía")
	assertDecimal(t, "0", pricing.DecimalFromString("no-es-numero"), "cadena inválida")
	assertDecimal(t, "12.34", pricing.DecimalFromString("12.34"), "cadena válida")
}

// ── helper ────────────────────────────────────────────────────────────────────

func assertDecimal(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	want, err := decimal.NewFromString(expected)
	if err != nil {
		t.Fatalf("vector de prueba inválido %q: %v", expected, err)
	}
	assert.True(t, want.Equal(got), "%s: esperado %s, obtenido %s", msg, expected, got.String())
}
