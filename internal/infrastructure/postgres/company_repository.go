package postgres

import (
	"context"
	"fmt"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, platform_id, name, tax_id, contact_name, contact_email, phone, address, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.PlatformID, company.Name, company.TaxID,
		company.ContactName, company.ContactEmail, company.Phone, company.Address,
		company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID dentro de la plataforma.
func (r *CompanyRepo) GetByID(id, platformID string) (*entity.Company, error) {
	query := `
		SELECT id, platform_id, name, tax_id, contact_name, contact_email, phone, address, status, created_at, updated_at
		FROM companies WHERE id = $1 AND platform_id = $2`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id, platformID).Scan(
		&c.ID, &c.PlatformID, &c.Name, &c.TaxID, &c.ContactName, &c.ContactEmail,
		&c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// List devuelve todas las empresas de la plataforma.
func (r *CompanyRepo) List(platformID string) ([]*entity.Company, error) {
	query := `
		SELECT id, platform_id, name, tax_id, contact_name, contact_email, phone, address, status, created_at, updated_at
		FROM companies WHERE platform_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, platformID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.PlatformID, &c.Name, &c.TaxID, &c.ContactName, &c.ContactEmail,
			&c.Phone, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
