package company

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// UseCase aplica reglas de negocio para empresas cliente.
type UseCase struct {
	repo repository.CompanyRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.CompanyRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea una nueva empresa dentro de la plataforma. Genera ID y estado
// inicial.
func (uc *UseCase) Create(platformID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		PlatformID:   platformID,
		Name:         in.Name,
		TaxID:        in.TaxID,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		Phone:        in.Phone,
		Address:      in.Address,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toResponse(company), nil
}

// GetByID obtiene una empresa por ID dentro de la plataforma.
func (uc *UseCase) GetByID(id, platformID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id, platformID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, id)
	}
	return toResponse(company), nil
}

// List lista las empresas de la plataforma.
func (uc *UseCase) List(platformID string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(platformID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toResponse(c))
	}
	return items, nil
}

func toResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Address:      c.Address,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
