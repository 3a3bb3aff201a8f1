package repository

import "github.com/mesharis-cell/platform-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para empresas cliente.
// Toda lectura está acotada por plataforma.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id, platformID string) (*entity.Company, error)
	List(platformID string) ([]*entity.Company, error)
}
