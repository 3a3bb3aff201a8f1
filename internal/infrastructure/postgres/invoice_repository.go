package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que InvoiceRepo implementa repository.InvoiceRepository.
var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// El constraint único (platform_id, context_type, context_id) es la defensa de
// último nivel contra dos primeras facturas concurrentes.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Una violación del constraint único se reporta
// como domain.ErrConflict.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, platform_id, context_type, context_id,
			number, pdf_url, paid_at, generated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.PlatformID, invoice.ContextType, invoice.ContextID,
		invoice.Number, invoice.PDFURL, invoice.PaidAt, invoice.GeneratedBy,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la entidad ya tiene factura", domain.ErrConflict)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

const invoiceColumns = `id, platform_id, context_type, context_id, number, pdf_url, paid_at, generated_by, created_at, updated_at`

// GetByID obtiene una factura por ID dentro de la plataforma.
func (r *InvoiceRepo) GetByID(id, platformID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND platform_id = $2`
	return r.scanOne(query, id, platformID)
}

// GetByContext obtiene la factura de una entidad comercial, si existe.
func (r *InvoiceRepo) GetByContext(contextType, contextID, platformID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE context_type = $1 AND context_id = $2 AND platform_id = $3`
	return r.scanOne(query, contextType, contextID, platformID)
}

// LastNumberWithPrefix devuelve el número de factura más alto que empieza con
// prefix para la plataforma, o "" si no existe ninguno. Los números llevan la
// secuencia en tres dígitos, así que el orden lexicográfico es el numérico.
func (r *InvoiceRepo) LastNumberWithPrefix(platformID, prefix string) (string, error) {
	query := `
		SELECT number FROM invoices
		WHERE platform_id = $1 AND number LIKE $2 || '%'
		ORDER BY number DESC LIMIT 1`
	var number string
	err := r.q.QueryRow(context.Background(), query, platformID, prefix).Scan(&number)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}

// UpdatePDF actualiza la URL del PDF y la auditoría tras una regeneración.
func (r *InvoiceRepo) UpdatePDF(id, platformID, pdfURL, generatedBy string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET pdf_url = $3, generated_by = $4, updated_at = $5
		 WHERE id = $1 AND platform_id = $2`,
		id, platformID, pdfURL, generatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("update invoice pdf: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update invoice pdf: factura %s no encontrada", id)
	}
	return nil
}

// MarkPaid registra el pago. Solo aplica sobre facturas aún no pagadas.
func (r *InvoiceRepo) MarkPaid(id, platformID string, paidAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET paid_at = $3, updated_at = $3
		 WHERE id = $1 AND platform_id = $2 AND paid_at IS NULL`,
		id, platformID, paidAt)
	if err != nil {
		return fmt.Errorf("mark invoice paid: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: la factura ya estaba pagada o no existe", domain.ErrConflict)
	}
	return nil
}

func (r *InvoiceRepo) scanOne(query string, args ...any) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&inv.ID, &inv.PlatformID, &inv.ContextType, &inv.ContextID,
		&inv.Number, &inv.PDFURL, &inv.PaidAt, &inv.GeneratedBy,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}
