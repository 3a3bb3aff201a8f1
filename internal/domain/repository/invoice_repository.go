package repository

import (
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
//
// Create debe retornar domain.ErrConflict ante una violación del constraint
// único (platform_id, context_type, context_id): es la defensa de último nivel
// contra dos generaciones concurrentes de primera factura.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id, platformID string) (*entity.Invoice, error)
	GetByContext(contextType, contextID, platformID string) (*entity.Invoice, error)
	// LastNumberWithPrefix devuelve el número de factura más alto que empieza con
	// prefix para la plataforma, o "" si no existe ninguno.
	LastNumberWithPrefix(platformID, prefix string) (string, error)
	// UpdatePDF actualiza la URL del PDF y los campos de auditoría tras regenerar.
	UpdatePDF(id, platformID, pdfURL, generatedBy string, updatedAt time.Time) error
	MarkPaid(id, platformID string, paidAt time.Time) error
}
