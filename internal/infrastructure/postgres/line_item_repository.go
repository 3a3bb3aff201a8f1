package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que LineItemRepo implementa repository.LineItemRepository.
var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// LineItemRepo implementación del puerto LineItemRepository sobre PostgreSQL.
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

// Create persiste una línea.
func (r *LineItemRepo) Create(item *entity.LineItem) error {
	query := `
		INSERT INTO line_items (id, platform_id, context_type, context_id,
			description, quantity, buy_total, category, billing_mode, voided,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.PlatformID, item.ContextType, item.ContextID,
		item.Description, item.Quantity, item.BuyTotal, item.Category,
		item.BillingMode, item.Voided, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// ListByContext devuelve todas las líneas del contexto, anuladas incluidas.
func (r *LineItemRepo) ListByContext(contextType, contextID, platformID string) ([]*entity.LineItem, error) {
	query := `
		SELECT id, platform_id, context_type, context_id,
		       description, quantity, buy_total, category, billing_mode, voided,
		       created_at, updated_at
		FROM line_items
		WHERE context_type = $1 AND context_id = $2 AND platform_id = $3
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, contextType, contextID, platformID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()

	var list []*entity.LineItem
	for rows.Next() {
		var li entity.LineItem
		if err := rows.Scan(
			&li.ID, &li.PlatformID, &li.ContextType, &li.ContextID,
			&li.Description, &li.Quantity, &li.BuyTotal, &li.Category,
			&li.BillingMode, &li.Voided, &li.CreatedAt, &li.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}

// Void anula una línea (se conserva para auditoría).
func (r *LineItemRepo) Void(id, platformID string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE line_items SET voided = true, updated_at = $3 WHERE id = $1 AND platform_id = $2`,
		id, platformID, updatedAt)
	if err != nil {
		return fmt.Errorf("void line item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("void line item: línea %s no encontrada", id)
	}
	return nil
}
