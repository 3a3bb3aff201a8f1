package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que PricingRepo implementa repository.PricingRepository.
var _ repository.PricingRepository = (*PricingRepo)(nil)

// PricingRepo implementación del puerto PricingRepository sobre PostgreSQL.
// Los montos mapean a NUMERIC y viajan como shopspring/decimal (codec del pool).
type PricingRepo struct {
	q Querier
}

// NewPricingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPricingRepository(q Querier) *PricingRepo {
	return &PricingRepo{q: q}
}

// Create persiste el registro de precios de una entidad comercial.
func (r *PricingRepo) Create(record *entity.PricingRecord) error {
	query := `
		INSERT INTO pricing_records (id, platform_id, context_type, context_id,
			base_ops_total, transport_rate, catalog_total, custom_total, margin_percent,
			estimate_pdf_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.PlatformID, record.ContextType, record.ContextID,
		record.BaseOpsTotal, record.TransportRate, record.CatalogTotal,
		record.CustomTotal, record.MarginPercent,
		nullIfEmpty(record.EstimatePDFURL), record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pricing record: %w", err)
	}
	return nil
}

// GetByContext obtiene el registro de precios de una entidad comercial.
func (r *PricingRepo) GetByContext(contextType, contextID, platformID string) (*entity.PricingRecord, error) {
	query := `
		SELECT id, platform_id, context_type, context_id,
		       base_ops_total, transport_rate, catalog_total, custom_total, margin_percent,
		       COALESCE(estimate_pdf_url, ''), created_at, updated_at
		FROM pricing_records
		WHERE context_type = $1 AND context_id = $2 AND platform_id = $3`
	var p entity.PricingRecord
	err := r.q.QueryRow(context.Background(), query, contextType, contextID, platformID).Scan(
		&p.ID, &p.PlatformID, &p.ContextType, &p.ContextID,
		&p.BaseOpsTotal, &p.TransportRate, &p.CatalogTotal, &p.CustomTotal, &p.MarginPercent,
		&p.EstimatePDFURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pricing record: %w", err)
	}
	return &p, nil
}

// UpdateEstimateURL guarda la URL de la última cotización generada.
func (r *PricingRepo) UpdateEstimateURL(contextType, contextID, platformID, url string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pricing_records SET estimate_pdf_url = $4, updated_at = $5
		 WHERE context_type = $1 AND context_id = $2 AND platform_id = $3`,
		contextType, contextID, platformID, url, updatedAt)
	if err != nil {
		return fmt.Errorf("update estimate url: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update estimate url: registro de precios del contexto %s no encontrado", contextID)
	}
	return nil
}
