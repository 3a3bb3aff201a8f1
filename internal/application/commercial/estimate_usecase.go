package commercial

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// EstimateUseCase genera el PDF de cotización de una entidad comercial. A
// diferencia de la factura no hay numeración ni guardas de estado: la clave es
// determinística por entidad y cada generación sobreescribe la anterior.
type EstimateUseCase struct {
	builder     *ContextBuilder
	pricingRepo repository.PricingRepository
	storage     ObjectStorage
	renderer    DocumentRenderer
}

// NewEstimateUseCase construye el caso de uso.
func NewEstimateUseCase(
	builder *ContextBuilder,
	pricingRepo repository.PricingRepository,
	storage ObjectStorage,
	renderer DocumentRenderer,
) *EstimateUseCase {
	return &EstimateUseCase{
		builder:     builder,
		pricingRepo: pricingRepo,
		storage:     storage,
		renderer:    renderer,
	}
}

// GenerateEstimate renderiza y sube la cotización. ADMIN/STAFF eligen
// audiencia (lado-venta por defecto); LOGISTICS solo puede la variante
// lado-compra, que no expone margen ni totales de venta.
func (uc *EstimateUseCase) GenerateEstimate(ctx context.Context, actor Actor, contextType, contextID string, audience Audience) (*dto.EstimateResponse, error) {
	if audience == "" {
		audience = AudienceSellSide
	}
	if audience != AudienceSellSide && audience != AudienceBuySide {
		return nil, fmt.Errorf("%w: audiencia desconocida %q", domain.ErrInvalidInput, audience)
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleStaff:
	case entity.RoleLogistics:
		if audience != AudienceBuySide {
			return nil, fmt.Errorf("%w: el rol LOGISTICS solo genera cotizaciones lado-compra", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: el rol %s no genera cotizaciones", domain.ErrForbidden, actor.Role)
	}

	c, err := uc.builder.Build(ctx, contextType, contextID, actor.PlatformID)
	if err != nil {
		return nil, err
	}

	payload := BuildDocumentPayload(c, audience, DocumentCostEstimate, c.ReferenceID, actor.UserID)
	pdf, err := uc.renderer.Render(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("renderizar cotización: %w", err)
	}

	key := BuildCostEstimateS3Key(c.Company.Name, contextType, c.ReferenceID, audience)
	if err := uc.storage.Upload(ctx, key, pdf, pdfContentType); err != nil {
		return nil, fmt.Errorf("subir cotización: %w", err)
	}
	url := uc.storage.PublicURL(key)

	// La URL lado-venta es la que se comparte con el cliente; solo esa se
	// persiste en el registro de precios.
	if audience == AudienceSellSide {
		if err := uc.pricingRepo.UpdateEstimateURL(contextType, contextID, actor.PlatformID, url, time.Now()); err != nil {
			return nil, err
		}
	}

	return &dto.EstimateResponse{
		ContextType: contextType,
		ContextID:   contextID,
		PDFURL:      url,
	}, nil
}
