package policy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// MarginView es el bloque de margen de una vista de precios.
type MarginView struct {
	Percent decimal.Decimal `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// PricingView es la proyección de precios que sale por la API. Margin y
// FinalTotal son punteros: se anulan para roles sin visibilidad lado-venta y el
// JSON los omite.
type PricingView struct {
	BaseOpsTotal   decimal.Decimal  `json:"base_ops_total"`
	TransportTotal decimal.Decimal  `json:"transport_total"`
	CatalogTotal   decimal.Decimal  `json:"catalog_total"`
	CustomTotal    decimal.Decimal  `json:"custom_total"`
	ServiceFee     *decimal.Decimal `json:"service_fee,omitempty"`
	Margin         *MarginView      `json:"margin,omitempty"`
	FinalTotal     *decimal.Decimal `json:"final_total,omitempty"`
}

// ProjectPricingByRole aplica la visibilidad por rol a una vista de precios.
// LOGISTICS pierde margen, tarifa de servicio y total final; todos los demás
// roles reciben la vista sin pérdida. Es una transformación de forma en la
// frontera de respuesta, no un filtro de persistencia.
func ProjectPricingByRole(role string, v PricingView) PricingView {
	if role != entity.RoleLogistics {
		return v
	}
	v.Margin = nil
	v.FinalTotal = nil
	v.ServiceFee = nil
	return v
}

// AssertCanViewInvoices niega a LOGISTICS la lectura de facturas.
func AssertCanViewInvoices(role string) error {
	if role == entity.RoleLogistics {
		return fmt.Errorf("%w: el rol LOGISTICS no tiene acceso a facturas", domain.ErrForbidden)
	}
	return nil
}
