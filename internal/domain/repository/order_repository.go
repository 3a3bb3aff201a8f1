package repository

import (
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para órdenes de alquiler.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id, platformID string) (*entity.Order, error)
	// ListByDateRange devuelve las órdenes cuyo inicio de evento cae en [from, to].
	ListByDateRange(platformID string, from, to time.Time) ([]*entity.Order, error)
	UpdateStatus(id, platformID, status string, updatedAt time.Time) error
	UpdateCommercialStatus(id, platformID, commercialStatus string, updatedAt time.Time) error
}
