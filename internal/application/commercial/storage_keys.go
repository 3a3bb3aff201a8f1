package commercial

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// Segmento extra para artefactos de solicitudes de servicio: los documentos de
// orden y de solicitud de la misma empresa nunca deben colisionar.
const serviceRequestSegment = "service-requests"

// BuildInvoiceS3Key deriva la clave estable del PDF de una factura:
// invoices/<slug-empresa>[/service-requests]/<número>.pdf
func BuildInvoiceS3Key(companyName, contextType, invoiceNumber string) string {
	if contextType == entity.ContextTypeServiceRequest {
		return fmt.Sprintf("invoices/%s/%s/%s.pdf", slugify(companyName), serviceRequestSegment, invoiceNumber)
	}
	return fmt.Sprintf("invoices/%s/%s.pdf", slugify(companyName), invoiceNumber)
}

// BuildCostEstimateS3Key deriva la clave determinística del PDF de una
// cotización (idempotente por entidad y audiencia: cada generación
// sobreescribe el mismo slot):
// cost-estimates/<slug-empresa>[/service-requests]/<referencia>[-interna].pdf
// La variante lado-compra tiene slot propio: nunca debe pisar el documento
// que ve el cliente.
func BuildCostEstimateS3Key(companyName, contextType, referenceID string, audience Audience) string {
	name := referenceID
	if audience == AudienceBuySide {
		name += "-interna"
	}
	if contextType == entity.ContextTypeServiceRequest {
		return fmt.Sprintf("cost-estimates/%s/%s/%s.pdf", slugify(companyName), serviceRequestSegment, name)
	}
	return fmt.Sprintf("cost-estimates/%s/%s.pdf", slugify(companyName), name)
}

// slugify: minúsculas, acentos plegados (NFD sin marcas diacríticas) y todo lo
// no alfanumérico colapsado a guiones.
func slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}
	var b strings.Builder
	lastHyphen := true // evita guion inicial
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "sin-nombre"
	}
	return slug
}
