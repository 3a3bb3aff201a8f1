// Package policy encierra las reglas de transición de estados y de visibilidad
// comercial. Toda función valida y retorna nil, o falla con un error de dominio
// envuelto; nunca tiene efectos secundarios.
package policy

import (
	"fmt"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// Transiciones operativas de una solicitud de servicio.
// COMPLETED y CANCELLED son terminales.
var requestTransitions = map[string][]string{
	entity.RequestDraft:      {entity.RequestSubmitted, entity.RequestCancelled},
	entity.RequestSubmitted:  {entity.RequestInReview, entity.RequestCancelled},
	entity.RequestInReview:   {entity.RequestApproved, entity.RequestCancelled},
	entity.RequestApproved:   {entity.RequestInProgress, entity.RequestCancelled},
	entity.RequestInProgress: {entity.RequestCompleted, entity.RequestCancelled},
	entity.RequestCompleted:  {},
	entity.RequestCancelled:  {},
}

// Transiciones operativas de una orden: cadena de cumplimiento lineal,
// cancelable hasta el despacho.
var orderTransitions = map[string][]string{
	entity.OrderSubmitted:  {entity.OrderQuoted, entity.OrderCancelled},
	entity.OrderQuoted:     {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed:  {entity.OrderPicking, entity.OrderCancelled},
	entity.OrderPicking:    {entity.OrderDispatched, entity.OrderCancelled},
	entity.OrderDispatched: {entity.OrderDelivered},
	entity.OrderDelivered:  {entity.OrderReturned},
	entity.OrderReturned:   {entity.OrderClosed},
	entity.OrderClosed:     {},
	entity.OrderCancelled:  {},
}

// Transiciones comerciales para entidades CLIENT_BILLABLE.
// INTERNAL es inalcanzable en este modo.
var commercialBillable = map[string][]string{
	entity.CommercialInternal:      {},
	entity.CommercialPendingQuote:  {entity.CommercialQuoted, entity.CommercialCancelled},
	entity.CommercialQuoted:        {entity.CommercialPendingQuote, entity.CommercialQuoteApproved, entity.CommercialCancelled},
	entity.CommercialQuoteApproved: {entity.CommercialInvoiced, entity.CommercialCancelled},
	entity.CommercialInvoiced:      {entity.CommercialPaid, entity.CommercialCancelled},
	entity.CommercialPaid:          {},
	entity.CommercialCancelled:     {},
}

// Transiciones comerciales para entidades INTERNAL_ONLY: sin ciclo de cotización.
var commercialInternalOnly = map[string][]string{
	entity.CommercialInternal:  {entity.CommercialInvoiced, entity.CommercialPaid, entity.CommercialCancelled},
	entity.CommercialInvoiced:  {entity.CommercialPaid, entity.CommercialCancelled},
	entity.CommercialPaid:      {},
	entity.CommercialCancelled: {},
}

// AssertRequestStatusTransition valida el cambio de estado operativo de una
// solicitud. current == target es siempre un no-op silencioso.
func AssertRequestStatusTransition(current, target string) error {
	if current == target {
		return nil
	}
	allowed, ok := requestTransitions[current]
	if !ok {
		return fmt.Errorf("%w: estado de solicitud desconocido %q", domain.ErrInvalidTransition, current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: solicitud no puede pasar de %s a %s", domain.ErrInvalidTransition, current, target)
}

// AssertOrderStatusTransition valida el cambio de estado operativo de una orden.
func AssertOrderStatusTransition(current, target string) error {
	if current == target {
		return nil
	}
	allowed, ok := orderTransitions[current]
	if !ok {
		return fmt.Errorf("%w: estado de orden desconocido %q", domain.ErrInvalidTransition, current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: orden no puede pasar de %s a %s", domain.ErrInvalidTransition, current, target)
}

// AssertCommercialTransition valida el cambio de estado comercial según el modo
// de facturación. Los vetos categóricos por modo se aplican antes de consultar
// la tabla, independientemente del estado actual:
//   - CLIENT_BILLABLE nunca acepta INTERNAL como destino.
//   - INTERNAL_ONLY nunca acepta los estados del ciclo de cotización.
func AssertCommercialTransition(billingMode, current, target string) error {
	if current == target {
		return nil
	}
	switch billingMode {
	case entity.BillingClientBillable:
		if target == entity.CommercialInternal {
			return fmt.Errorf("%w: INTERNAL no aplica a entidades facturables al cliente", domain.ErrInvalidTransition)
		}
		return assertInTable(commercialBillable, current, target)
	case entity.BillingInternalOnly:
		switch target {
		case entity.CommercialPendingQuote, entity.CommercialQuoted, entity.CommercialQuoteApproved:
			return fmt.Errorf("%w: %s no aplica a entidades de uso interno", domain.ErrInvalidTransition, target)
		}
		return assertInTable(commercialInternalOnly, current, target)
	default:
		return fmt.Errorf("%w: modo de facturación desconocido %q", domain.ErrInvalidInput, billingMode)
	}
}

func assertInTable(table map[string][]string, current, target string) error {
	allowed, ok := table[current]
	if !ok {
		return fmt.Errorf("%w: estado comercial desconocido %q", domain.ErrInvalidTransition, current)
	}
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	return fmt.Errorf("%w: estado comercial no puede pasar de %s a %s", domain.ErrInvalidTransition, current, target)
}
