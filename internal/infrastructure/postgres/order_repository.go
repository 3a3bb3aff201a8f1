package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que OrderRepo implementa repository.OrderRepository.
var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, platform_id, company_id, reference_id, status, commercial_status,
		event_name, venue_name, venue_address, venue_city,
		contact_name, contact_email, contact_phone,
		starts_at, ends_at, created_at, updated_at`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.PlatformID, order.CompanyID, order.ReferenceID,
		order.Status, order.CommercialStatus,
		order.EventName, order.VenueName, order.VenueAddress, order.VenueCity,
		order.ContactName, order.ContactEmail, order.ContactPhone,
		order.StartsAt, order.EndsAt, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID dentro de la plataforma.
func (r *OrderRepo) GetByID(id, platformID string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND platform_id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id, platformID).Scan(
		&o.ID, &o.PlatformID, &o.CompanyID, &o.ReferenceID,
		&o.Status, &o.CommercialStatus,
		&o.EventName, &o.VenueName, &o.VenueAddress, &o.VenueCity,
		&o.ContactName, &o.ContactEmail, &o.ContactPhone,
		&o.StartsAt, &o.EndsAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByDateRange devuelve las órdenes cuyo inicio de evento cae en [from, to].
func (r *OrderRepo) ListByDateRange(platformID string, from, to time.Time) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE platform_id = $1 AND starts_at >= $2 AND starts_at <= $3
		ORDER BY starts_at`
	rows, err := r.q.Query(context.Background(), query, platformID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.PlatformID, &o.CompanyID, &o.ReferenceID,
			&o.Status, &o.CommercialStatus,
			&o.EventName, &o.VenueName, &o.VenueAddress, &o.VenueCity,
			&o.ContactName, &o.ContactEmail, &o.ContactPhone,
			&o.StartsAt, &o.EndsAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado operativo de la orden.
func (r *OrderRepo) UpdateStatus(id, platformID, status string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $3, updated_at = $4 WHERE id = $1 AND platform_id = $2`,
		id, platformID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update order status: orden %s no encontrada", id)
	}
	return nil
}

// UpdateCommercialStatus cambia el estado comercial de la orden.
func (r *OrderRepo) UpdateCommercialStatus(id, platformID, commercialStatus string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET commercial_status = $3, updated_at = $4 WHERE id = $1 AND platform_id = $2`,
		id, platformID, commercialStatus, updatedAt)
	if err != nil {
		return fmt.Errorf("update order commercial status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update order commercial status: orden %s no encontrada", id)
	}
	return nil
}
