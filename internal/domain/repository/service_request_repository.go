package repository

import (
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// ServiceRequestRepository define el puerto de persistencia para solicitudes de servicio.
type ServiceRequestRepository interface {
	Create(request *entity.ServiceRequest) error
	GetByID(id, platformID string) (*entity.ServiceRequest, error)
	// ListByDateRange devuelve las solicitudes cuya fecha objetivo cae en [from, to].
	ListByDateRange(platformID string, from, to time.Time) ([]*entity.ServiceRequest, error)
	UpdateStatus(id, platformID, status string, updatedAt time.Time) error
	UpdateCommercialStatus(id, platformID, commercialStatus string, updatedAt time.Time) error
}
