package repository

import (
	"time"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// LineItemRepository define el puerto de persistencia para líneas de una
// entidad comercial.
type LineItemRepository interface {
	Create(item *entity.LineItem) error
	// ListByContext devuelve todas las líneas del contexto, anuladas incluidas;
	// el filtrado comercial ocurre en el normalizador.
	ListByContext(contextType, contextID, platformID string) ([]*entity.LineItem, error)
	Void(id, platformID string, updatedAt time.Time) error
}
