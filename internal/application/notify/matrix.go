// Package notify mapea transiciones del ciclo comercial a destinatarios y
// cuerpos de correo. Es puro: construir mensajes no envía nada; el envío es un
// puerto que implementa la infraestructura.
package notify

import (
	"context"
	"fmt"
)

// Event eventos del ciclo de vida que disparan notificaciones.
type Event string

const (
	EventQuoteIssued        Event = "QUOTE_ISSUED"
	EventQuoteApproved      Event = "QUOTE_APPROVED"
	EventInvoiceGenerated   Event = "INVOICE_GENERATED"
	EventPaymentConfirmed   Event = "PAYMENT_CONFIRMED"
	EventOrderStatusChanged Event = "ORDER_STATUS_CHANGED"
	EventRequestStatusDone  Event = "REQUEST_COMPLETED"
)

// Audience conjuntos de destinatarios.
type Audience string

const (
	AudienceClientContact Audience = "CLIENT_CONTACT"
	AudiencePlatformStaff Audience = "PLATFORM_STAFF"
	AudienceLogistics     Audience = "LOGISTICS_TEAM"
)

// Matriz evento -> audiencias. Logística solo recibe eventos operativos:
// nada con montos lado-venta.
var recipientMatrix = map[Event][]Audience{
	EventQuoteIssued:        {AudienceClientContact, AudiencePlatformStaff},
	EventQuoteApproved:      {AudiencePlatformStaff},
	EventInvoiceGenerated:   {AudienceClientContact, AudiencePlatformStaff},
	EventPaymentConfirmed:   {AudienceClientContact, AudiencePlatformStaff},
	EventOrderStatusChanged: {AudiencePlatformStaff, AudienceLogistics},
	EventRequestStatusDone:  {AudienceClientContact, AudiencePlatformStaff},
}

// Input datos mínimos para armar los mensajes de un evento.
type Input struct {
	Event        Event
	PlatformID   string
	ReferenceID  string // código legible de la entidad (ORD-..., SRV-..., INV-...)
	CompanyName  string
	ContactName  string
	ContactEmail string // destinatario cuando la audiencia es el contacto del cliente
	Detail       string // número de factura, nuevo estado, etc.
}

// Message correo listo para el puerto de envío. To solo viene resuelto para
// CLIENT_CONTACT; las audiencias internas se resuelven en el adaptador.
type Message struct {
	Audience Audience
	To       string
	Subject  string
	Body     string
}

// Sender puerto de entrega (la entrega real es un colaborador externo).
type Sender interface {
	Send(ctx context.Context, msgs []Message) error
}

// BuildMessages resuelve la matriz de destinatarios y arma asunto y cuerpo
// para cada audiencia del evento.
func BuildMessages(in Input) []Message {
	audiences := recipientMatrix[in.Event]
	msgs := make([]Message, 0, len(audiences))
	for _, a := range audiences {
		m := Message{Audience: a, Subject: subjectFor(in), Body: bodyFor(in, a)}
		if a == AudienceClientContact {
			m.To = in.ContactEmail
		}
		msgs = append(msgs, m)
	}
	return msgs
}

func subjectFor(in Input) string {
	switch in.Event {
	case EventQuoteIssued:
		return fmt.Sprintf("Cotización disponible — %s", in.ReferenceID)
	case EventQuoteApproved:
		return fmt.Sprintf("Cotización aprobada — %s", in.ReferenceID)
	case EventInvoiceGenerated:
		return fmt.Sprintf("Factura %s emitida — %s", in.Detail, in.ReferenceID)
	case EventPaymentConfirmed:
		return fmt.Sprintf("Pago confirmado — %s", in.ReferenceID)
	case EventOrderStatusChanged:
		return fmt.Sprintf("Orden %s: nuevo estado %s", in.ReferenceID, in.Detail)
	case EventRequestStatusDone:
		return fmt.Sprintf("Solicitud %s completada", in.ReferenceID)
	default:
		return fmt.Sprintf("Actualización — %s", in.ReferenceID)
	}
}

func bodyFor(in Input, a Audience) string {
	greeting := "Equipo:"
	if a == AudienceClientContact {
		name := in.ContactName
		if name == "" || name == "N/A" {
			name = in.CompanyName
		}
		greeting = fmt.Sprintf("Hola %s:", name)
	}
	switch in.Event {
	case EventQuoteIssued:
		return fmt.Sprintf("%s\n\nLa cotización de %s para %s ya está disponible.\n", greeting, in.ReferenceID, in.CompanyName)
	case EventQuoteApproved:
		return fmt.Sprintf("%s\n\n%s aprobó la cotización de %s.\n", greeting, in.CompanyName, in.ReferenceID)
	case EventInvoiceGenerated:
		return fmt.Sprintf("%s\n\nSe emitió la factura %s de %s (%s).\n", greeting, in.Detail, in.ReferenceID, in.CompanyName)
	case EventPaymentConfirmed:
		return fmt.Sprintf("%s\n\nRegistramos el pago de %s. La factura queda cerrada.\n", greeting, in.ReferenceID)
	case EventOrderStatusChanged:
		return fmt.Sprintf("%s\n\nLa orden %s de %s pasó a %s.\n", greeting, in.ReferenceID, in.CompanyName, in.Detail)
	case EventRequestStatusDone:
		return fmt.Sprintf("%s\n\nLa solicitud %s de %s fue completada.\n", greeting, in.ReferenceID, in.CompanyName)
	default:
		return fmt.Sprintf("%s\n\nHay una actualización de %s.\n", greeting, in.ReferenceID)
	}
}
