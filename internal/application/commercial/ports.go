package commercial

import (
	"context"

	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repositorios
// comerciales atados a la tx. Lo usa la creación de entidades (entidad +
// precios + líneas) y la primera generación de factura (insert + flip de
// estado comercial, atómicos por exigencia del dominio).
type TxRunner interface {
	RunCommercial(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		requestRepo repository.ServiceRequestRepository,
		pricingRepo repository.PricingRepository,
		lineItemRepo repository.LineItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// ObjectStorage puerto del object store S3-compatible donde viven los PDFs.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// PublicURL construye la URL pública determinística de un objeto.
	PublicURL(key string) string
}

// DocumentRenderer puerto del renderizador de PDFs. Recibe exactamente el
// payload de BuildDocumentPayload; el layout visual no es asunto de esta capa.
type DocumentRenderer interface {
	Render(ctx context.Context, payload *DocumentPayload) ([]byte, error)
}

// Actor es el contexto de autorización del llamador, extraído del token.
type Actor struct {
	UserID     string
	PlatformID string
	CompanyID  string
	Role       string
}
