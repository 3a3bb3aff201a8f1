package entity

// Tipos de entidad comercial facturable.
const (
	ContextTypeOrder          = "ORDER"
	ContextTypeServiceRequest = "SERVICE_REQUEST"
)

// Estados comerciales (ciclo de facturación, independiente del operativo).
const (
	CommercialInternal      = "INTERNAL"
	CommercialPendingQuote  = "PENDING_QUOTE"
	CommercialQuoted        = "QUOTED"
	CommercialQuoteApproved = "QUOTE_APPROVED"
	CommercialInvoiced      = "INVOICED"
	CommercialPaid          = "PAID"
	CommercialCancelled     = "CANCELLED"
)

// Modos de facturación de una solicitud de servicio. Las órdenes se comportan
// siempre como CLIENT_BILLABLE.
const (
	BillingInternalOnly   = "INTERNAL_ONLY"
	BillingClientBillable = "CLIENT_BILLABLE"
)
