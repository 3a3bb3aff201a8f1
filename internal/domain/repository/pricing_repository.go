package repository

import (
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// PricingRepository define el puerto de persistencia del registro de precios
// (uno a uno con la entidad comercial).
type PricingRepository interface {
	Create(record *entity.PricingRecord) error
	GetByContext(contextType, contextID, platformID string) (*entity.PricingRecord, error)
	UpdateEstimateURL(contextType, contextID, platformID, url string, updatedAt time.Time) error
}
