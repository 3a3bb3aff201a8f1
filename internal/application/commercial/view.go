package commercial

import (
	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/policy"
)

// ToResponse proyecta un contexto comercial a su DTO, aplicando la visibilidad
// del rol: LOGISTICS pierde margen, tarifa de servicio, total final y los
// montos lado-venta de cada línea. Sus componentes son los lado-compra: con los
// componentes lado-venta y el BuyTotal de las líneas el margen sería derivable.
func ToResponse(role string, c *Context) dto.CommercialContextResponse {
	serviceFee := c.Pricing.Summary.ServiceFee
	finalTotal := c.Pricing.Summary.FinalTotal
	view := policy.PricingView{
		BaseOpsTotal:   c.Pricing.Summary.SellLines.BaseOpsTotal,
		TransportTotal: c.Pricing.Summary.SellLines.TransportTotal,
		CatalogTotal:   c.Pricing.Summary.SellLines.CatalogTotal,
		CustomTotal:    c.Pricing.Summary.SellLines.CustomTotal,
		ServiceFee:     &serviceFee,
		Margin: &policy.MarginView{
			Percent: c.Pricing.Buy.MarginPercent,
			Amount:  c.Pricing.Summary.MarginAmount,
		},
		FinalTotal: &finalTotal,
	}
	if role == entity.RoleLogistics {
		view.BaseOpsTotal = c.Pricing.Buy.BaseOpsTotal
		view.TransportTotal = c.Pricing.Buy.TransportRate
		view.CatalogTotal = c.Pricing.Buy.CatalogTotal
		view.CustomTotal = c.Pricing.Buy.CustomTotal
	}
	view = policy.ProjectPricingByRole(role, view)

	lines := make([]dto.LineItemView, 0, len(c.LineItems))
	for _, li := range c.LineItems {
		lv := dto.LineItemView{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			Category:    li.Category,
			BillingMode: li.BillingMode,
			BuyTotal:    li.BuyTotal,
			BuyUnitRate: li.BuyUnitRate,
		}
		if role != entity.RoleLogistics {
			sellTotal, sellUnit := li.SellTotal, li.SellUnitRate
			lv.SellTotal = &sellTotal
			lv.SellUnitRate = &sellUnit
		}
		lines = append(lines, lv)
	}

	return dto.CommercialContextResponse{
		ContextType:       c.ContextType,
		ContextID:         c.ContextID,
		ReferenceID:       c.ReferenceID,
		OperationalStatus: c.OperationalStatus,
		CommercialStatus:  c.CommercialStatus,
		CompanyName:       c.Company.Name,
		ContactName:       c.Contact.Name,
		ContactEmail:      c.Contact.Email,
		VenueName:         c.Venue.Name,
		TimelineStart:     c.Timeline.StartsAt,
		TimelineEnd:       c.Timeline.EndsAt,
		Pricing:           view,
		LineItems:         lines,
	}
}

// ToResponses proyecta una lista de contextos.
func ToResponses(role string, contexts []*Context) []dto.CommercialContextResponse {
	out := make([]dto.CommercialContextResponse, 0, len(contexts))
	for _, c := range contexts {
		out = append(out, ToResponse(role, c))
	}
	return out
}
