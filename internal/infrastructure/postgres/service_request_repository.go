package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que ServiceRequestRepo implementa repository.ServiceRequestRepository.
var _ repository.ServiceRequestRepository = (*ServiceRequestRepo)(nil)

// ServiceRequestRepo implementación del puerto ServiceRequestRepository sobre PostgreSQL.
type ServiceRequestRepo struct {
	q Querier
}

// NewServiceRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRequestRepository(q Querier) *ServiceRequestRepo {
	return &ServiceRequestRepo{q: q}
}

const requestColumns = `id, platform_id, company_id, reference_id, title, description,
		status, billing_mode, commercial_status,
		contact_name, contact_email, contact_phone,
		requested_for, created_at, updated_at`

// Create persiste una nueva solicitud de servicio.
func (r *ServiceRequestRepo) Create(request *entity.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.PlatformID, request.CompanyID, request.ReferenceID,
		request.Title, request.Description,
		request.Status, request.BillingMode, request.CommercialStatus,
		request.ContactName, request.ContactEmail, request.ContactPhone,
		request.RequestedFor, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID dentro de la plataforma.
func (r *ServiceRequestRepo) GetByID(id, platformID string) (*entity.ServiceRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM service_requests WHERE id = $1 AND platform_id = $2`
	var s entity.ServiceRequest
	err := r.q.QueryRow(context.Background(), query, id, platformID).Scan(
		&s.ID, &s.PlatformID, &s.CompanyID, &s.ReferenceID,
		&s.Title, &s.Description,
		&s.Status, &s.BillingMode, &s.CommercialStatus,
		&s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.RequestedFor, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service request: %w", err)
	}
	return &s, nil
}

// ListByDateRange devuelve las solicitudes cuya fecha objetivo cae en [from, to].
func (r *ServiceRequestRepo) ListByDateRange(platformID string, from, to time.Time) ([]*entity.ServiceRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM service_requests
		WHERE platform_id = $1 AND requested_for >= $2 AND requested_for <= $3
		ORDER BY requested_for`
	rows, err := r.q.Query(context.Background(), query, platformID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.ServiceRequest
	for rows.Next() {
		var s entity.ServiceRequest
		if err := rows.Scan(
			&s.ID, &s.PlatformID, &s.CompanyID, &s.ReferenceID,
			&s.Title, &s.Description,
			&s.Status, &s.BillingMode, &s.CommercialStatus,
			&s.ContactName, &s.ContactEmail, &s.ContactPhone,
			&s.RequestedFor, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service request: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado operativo de la solicitud.
func (r *ServiceRequestRepo) UpdateStatus(id, platformID, status string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE service_requests SET status = $3, updated_at = $4 WHERE id = $1 AND platform_id = $2`,
		id, platformID, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update request status: solicitud %s no encontrada", id)
	}
	return nil
}

// UpdateCommercialStatus cambia el estado comercial de la solicitud.
func (r *ServiceRequestRepo) UpdateCommercialStatus(id, platformID, commercialStatus string, updatedAt time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE service_requests SET commercial_status = $3, updated_at = $4 WHERE id = $1 AND platform_id = $2`,
		id, platformID, commercialStatus, updatedAt)
	if err != nil {
		return fmt.Errorf("update request commercial status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update request commercial status: solicitud %s no encontrada", id)
	}
	return nil
}
