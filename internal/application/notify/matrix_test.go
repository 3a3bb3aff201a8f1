package notify_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/application/notify"
)

func buildTestInput(ev notify.Event) notify.Input {
	return notify.Input{
		Event:        ev,
		PlatformID:   "plat-1",
		ReferenceID:  "ORD-2026-0144",
		CompanyName:  "Acme Events",
		ContactName:  "Laura Pérez",
		ContactEmail: "laura@acme.example",
		Detail:       "INV-20260415-001",
	}
}

func audiencesOf(msgs []notify.Message) []notify.Audience {
	out := make([]notify.Audience, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Audience)
	}
	return out
}

// TestBuildMessages_LogisticaNuncaRecibeEventosComerciales fija la regla de la
// matriz: logística no tiene visibilidad lado-venta, así que ningún evento con
// montos la incluye como audiencia.
func TestBuildMessages_LogisticaNuncaRecibeEventosComerciales(t *testing.T) {
	commercialEvents := []notify.Event{
		notify.EventQuoteIssued,
		notify.EventQuoteApproved,
		notify.EventInvoiceGenerated,
		notify.EventPaymentConfirmed,
	}
	for _, ev := range commercialEvents {
		for _, m := range notify.BuildMessages(buildTestInput(ev)) {
			assert.NotEqual(t, notify.AudienceLogistics, m.Audience,
				"el evento %s no debe llegar a logística", ev)
		}
	}
}

func TestBuildMessages_CambioDeEstadoOperativoIncluyeLogistica(t *testing.T) {
	msgs := notify.BuildMessages(buildTestInput(notify.EventOrderStatusChanged))

	assert.ElementsMatch(t,
		[]notify.Audience{notify.AudiencePlatformStaff, notify.AudienceLogistics},
		audiencesOf(msgs),
		"los eventos operativos van a staff y logística, nunca al cliente")
}

func TestBuildMessages_AprobacionSoloParaStaff(t *testing.T) {
	msgs := notify.BuildMessages(buildTestInput(notify.EventQuoteApproved))

	require.Len(t, msgs, 1)
	assert.Equal(t, notify.AudiencePlatformStaff, msgs[0].Audience,
		"la aprobación la hizo el cliente: solo se entera la plataforma")
}

// TestBuildMessages_DestinatarioSoloParaContactoCliente verifica que To viene
// resuelto únicamente en los mensajes al contacto del cliente; las audiencias
// internas se resuelven en el adaptador de envío.
func TestBuildMessages_DestinatarioSoloParaContactoCliente(t *testing.T) {
	msgs := notify.BuildMessages(buildTestInput(notify.EventInvoiceGenerated))

	require.Len(t, msgs, 2)
	for _, m := range msgs {
		if m.Audience == notify.AudienceClientContact {
			assert.Equal(t, "laura@acme.example", m.To)
		} else {
			assert.Empty(t, m.To, "las audiencias internas no llevan destinatario directo")
		}
	}
}

func TestBuildMessages_AsuntoIncluyeNumeroDeFactura(t *testing.T) {
	msgs := notify.BuildMessages(buildTestInput(notify.EventInvoiceGenerated))

	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0].Subject, "INV-20260415-001")
	assert.Contains(t, msgs[0].Subject, "ORD-2026-0144")
}

// TestBuildMessages_SaludoConFallbackDeNombre verifica que un contacto sin
// nombre (o con el placeholder N/A) se saluda por el nombre de la empresa.
func TestBuildMessages_SaludoConFallbackDeNombre(t *testing.T) {
	in := buildTestInput(notify.EventQuoteIssued)
	in.ContactName = "N/A"

	msgs := notify.BuildMessages(in)
	var clientBody string
	for _, m := range msgs {
		if m.Audience == notify.AudienceClientContact {
			clientBody = m.Body
		}
	}

	require.NotEmpty(t, clientBody)
	assert.True(t, strings.HasPrefix(clientBody, "Hola Acme Events:"),
		"el saludo debe caer al nombre de la empresa, no a N/A")
}

func TestBuildMessages_EventoDesconocidoNoGeneraNada(t *testing.T) {
	msgs := notify.BuildMessages(buildTestInput(notify.Event("ALGO_RARO")))
	assert.Empty(t, msgs, "un evento fuera de la matriz no tiene audiencias")
}
