package commercial

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// TestToResponse_LogisticaSinMontosDeVenta verifica que la proyección para
// LOGISTICS no filtra ningún monto lado-venta: ni en los totales ni línea por
// línea.
func TestToResponse_LogisticaSinMontosDeVenta(t *testing.T) {
	resp := ToResponse(entity.RoleLogistics, buildTestContext())

	assert.Nil(t, resp.Pricing.Margin)
	assert.Nil(t, resp.Pricing.ServiceFee)
	assert.Nil(t, resp.Pricing.FinalTotal)

	require.Len(t, resp.LineItems, 2)
	for _, li := range resp.LineItems {
		assert.Nil(t, li.SellTotal, "línea %s: el total venta no debe viajar", li.LineItemID)
		assert.Nil(t, li.SellUnitRate, "línea %s: la tarifa venta no debe viajar", li.LineItemID)
		assert.False(t, li.BuyTotal.IsZero(), "los costos sí son visibles para logística")
	}
}

// TestToResponse_LogisticaVeComponentesLadoCompra fija que los componentes que
// sí viajan para LOGISTICS son los de costo, sin margen aplicado: si viajaran
// los lado-venta, el margen se reconstruiría a partir del BuyTotal de las
// líneas y anular Margin/FinalTotal no protegería nada.
func TestToResponse_LogisticaVeComponentesLadoCompra(t *testing.T) {
	resp := ToResponse(entity.RoleLogistics, buildTestContext())

	assert.True(t, resp.Pricing.BaseOpsTotal.Equal(decimal.NewFromInt(500)),
		"operación base lado-compra; obtuvo %s", resp.Pricing.BaseOpsTotal)
	assert.True(t, resp.Pricing.TransportTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.Pricing.CatalogTotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, resp.Pricing.CustomTotal.IsZero())
}

func TestToResponse_RolesComercialesVenTodo(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleStaff, entity.RoleClient} {
		resp := ToResponse(role, buildTestContext())

		require.NotNil(t, resp.Pricing.FinalTotal, "rol %s", role)
		require.NotNil(t, resp.Pricing.Margin, "rol %s", role)
		assert.True(t, resp.Pricing.FinalTotal.Equal(decimal.NewFromInt(825)))
		assert.True(t, resp.Pricing.Margin.Percent.Equal(decimal.NewFromInt(10)))

		require.Len(t, resp.LineItems, 2)
		require.NotNil(t, resp.LineItems[0].SellTotal)
		assert.True(t, resp.LineItems[0].SellTotal.Equal(decimal.NewFromInt(440)))
	}
}

func TestToResponses_PreservaElOrden(t *testing.T) {
	a, b := buildTestContext(), buildTestContext()
	b.ReferenceID = "ORD-2026-0145"

	out := ToResponses(entity.RoleStaff, []*Context{a, b})

	require.Len(t, out, 2)
	assert.Equal(t, "ORD-2026-0144", out[0].ReferenceID)
	assert.Equal(t, "ORD-2026-0145", out[1].ReferenceID)
}
