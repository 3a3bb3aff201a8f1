package policy_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/policy"
)

func buildTestPricingView() policy.PricingView {
	fee := decimal.NewFromInt(55)
	total := decimal.NewFromInt(1375)
	return policy.PricingView{
		BaseOpsTotal:   decimal.NewFromInt(1000),
		TransportTotal: decimal.NewFromInt(200),
		CatalogTotal:   decimal.NewFromInt(50),
		CustomTotal:    decimal.Zero,
		ServiceFee:     &fee,
		Margin: &policy.MarginView{
			Percent: decimal.NewFromInt(10),
			Amount:  decimal.NewFromInt(125),
		},
		FinalTotal: &total,
	}
}

// TestProjectPricingByRole_LogisticaPierdeLadoVenta verifica que LOGISTICS
// recibe los componentes de costo pero ni margen, ni tarifa de servicio, ni
// total final.
func TestProjectPricingByRole_LogisticaPierdeLadoVenta(t *testing.T) {
	v := policy.ProjectPricingByRole(entity.RoleLogistics, buildTestPricingView())

	assert.Nil(t, v.Margin, "LOGISTICS no debe ver el margen")
	assert.Nil(t, v.ServiceFee, "LOGISTICS no debe ver la tarifa de servicio")
	assert.Nil(t, v.FinalTotal, "LOGISTICS no debe ver el total final")
	assert.True(t, v.BaseOpsTotal.Equal(decimal.NewFromInt(1000)),
		"los componentes de costo sí son visibles para logística")
	assert.True(t, v.TransportTotal.Equal(decimal.NewFromInt(200)))
}

func TestProjectPricingByRole_RestoDeRolesSinPerdida(t *testing.T) {
	for _, role := range []string{entity.RoleAdmin, entity.RoleStaff, entity.RoleClient} {
		v := policy.ProjectPricingByRole(role, buildTestPricingView())

		require.NotNil(t, v.Margin, "el rol %s debe ver el margen", role)
		require.NotNil(t, v.FinalTotal, "el rol %s debe ver el total final", role)
		require.NotNil(t, v.ServiceFee, "el rol %s debe ver la tarifa de servicio", role)
		assert.True(t, v.FinalTotal.Equal(decimal.NewFromInt(1375)))
		assert.True(t, v.Margin.Amount.Equal(decimal.NewFromInt(125)))
	}
}

func TestAssertCanViewInvoices_NiegaLogistica(t *testing.T) {
	err := policy.AssertCanViewInvoices(entity.RoleLogistics)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	for _, role := range []string{entity.RoleAdmin, entity.RoleStaff, entity.RoleClient} {
		assert.NoError(t, policy.AssertCanViewInvoices(role), "el rol %s accede a facturas", role)
	}
}
