package policy

import (
	"fmt"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// Estados operativos de orden desde los que se permite facturar:
// CONFIRMED hasta CLOSED inclusive.
var orderInvoiceableStatuses = map[string]bool{
	entity.OrderConfirmed:  true,
	entity.OrderPicking:    true,
	entity.OrderDispatched: true,
	entity.OrderDelivered:  true,
	entity.OrderReturned:   true,
	entity.OrderClosed:     true,
}

// AssertOrderCanGenerateInvoice permite facturar una orden solo desde un estado
// operativo confirmado o posterior.
func AssertOrderCanGenerateInvoice(status string) error {
	if !orderInvoiceableStatuses[status] {
		return fmt.Errorf("%w: la orden en estado %s no es facturable", domain.ErrInvalidTransition, status)
	}
	return nil
}

// AssertClientCanApproveServiceRequestQuote exige modo CLIENT_BILLABLE y estado
// comercial QUOTED; cualquier otra combinación falla nombrando el estado actual.
func AssertClientCanApproveServiceRequestQuote(billingMode, commercialStatus string) error {
	if billingMode != entity.BillingClientBillable {
		return fmt.Errorf("%w: solo solicitudes facturables al cliente admiten aprobación de cotización", domain.ErrInvalidTransition)
	}
	if commercialStatus != entity.CommercialQuoted {
		return fmt.Errorf("%w: la cotización no está emitida (estado actual %s)", domain.ErrInvalidTransition, commercialStatus)
	}
	return nil
}

// AssertServiceRequestCanGenerateInvoice valida la elegibilidad de factura de
// una solicitud. Una solicitud CANCELLED nunca es facturable. Para
// CLIENT_BILLABLE la primera factura exige QUOTE_APPROVED y la regeneración
// admite QUOTE_APPROVED, INVOICED o PAID; para INTERNAL_ONLY el estado comercial
// debe ser INTERNAL, INVOICED o PAID.
func AssertServiceRequestCanGenerateInvoice(billingMode, commercialStatus, requestStatus string, regenerate bool) error {
	if requestStatus == entity.RequestCancelled {
		return fmt.Errorf("%w: una solicitud cancelada no es facturable", domain.ErrInvalidTransition)
	}
	switch billingMode {
	case entity.BillingClientBillable:
		if regenerate {
			switch commercialStatus {
			case entity.CommercialQuoteApproved, entity.CommercialInvoiced, entity.CommercialPaid:
				return nil
			}
			return fmt.Errorf("%w: no se puede regenerar factura en estado comercial %s", domain.ErrInvalidTransition, commercialStatus)
		}
		if commercialStatus != entity.CommercialQuoteApproved {
			return fmt.Errorf("%w: la primera factura requiere cotización aprobada (estado actual %s)", domain.ErrInvalidTransition, commercialStatus)
		}
		return nil
	case entity.BillingInternalOnly:
		switch commercialStatus {
		case entity.CommercialInternal, entity.CommercialInvoiced, entity.CommercialPaid:
			return nil
		}
		return fmt.Errorf("%w: estado comercial %s no facturable en modo interno", domain.ErrInvalidTransition, commercialStatus)
	default:
		return fmt.Errorf("%w: modo de facturación desconocido %q", domain.ErrInvalidInput, billingMode)
	}
}
