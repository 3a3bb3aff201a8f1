package commercial

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/pricing"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// CreateUseCase crea entidades comerciales con su registro de precios y sus
// líneas en una sola transacción.
type CreateUseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyRepository
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(txRunner TxRunner, companyRepo repository.CompanyRepository) *CreateUseCase {
	return &CreateUseCase{txRunner: txRunner, companyRepo: companyRepo}
}

// CreateOrder crea una orden de alquiler. Nace SUBMITTED / PENDING_QUOTE.
func (uc *CreateUseCase) CreateOrder(ctx context.Context, platformID string, in dto.CreateOrderRequest) (*entity.Order, error) {
	if in.CompanyID == "" || in.EventName == "" {
		return nil, fmt.Errorf("%w: company_id y event_name son obligatorios", domain.ErrInvalidInput)
	}
	if err := validatePricing(in.Pricing); err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID, platformID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, in.CompanyID)
	}

	now := time.Now()
	order := &entity.Order{
		ID:               uuid.New().String(),
		PlatformID:       platformID,
		CompanyID:        in.CompanyID,
		ReferenceID:      newReferenceID("ORD", now),
		Status:           entity.OrderSubmitted,
		CommercialStatus: entity.CommercialPendingQuote,
		EventName:        in.EventName,
		VenueName:        in.VenueName,
		VenueAddress:     in.VenueAddress,
		VenueCity:        in.VenueCity,
		ContactName:      in.ContactName,
		ContactEmail:     in.ContactEmail,
		ContactPhone:     in.ContactPhone,
		StartsAt:         in.StartsAt,
		EndsAt:           in.EndsAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.RunCommercial(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.ServiceRequestRepository,
		pricingRepo repository.PricingRepository,
		lineItemRepo repository.LineItemRepository,
		_ repository.InvoiceRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if err := pricingRepo.Create(pricingRecord(platformID, entity.ContextTypeOrder, order.ID, in.Pricing, now)); err != nil {
			return err
		}
		return createLineItems(lineItemRepo, platformID, entity.ContextTypeOrder, order.ID, in.LineItems, now)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateServiceRequest crea una solicitud de servicio. Nace DRAFT; su estado
// comercial inicial depende del modo de facturación.
func (uc *CreateUseCase) CreateServiceRequest(ctx context.Context, platformID string, in dto.CreateServiceRequestRequest) (*entity.ServiceRequest, error) {
	if in.CompanyID == "" || in.Title == "" {
		return nil, fmt.Errorf("%w: company_id y title son obligatorios", domain.ErrInvalidInput)
	}
	if in.BillingMode != entity.BillingInternalOnly && in.BillingMode != entity.BillingClientBillable {
		return nil, fmt.Errorf("%w: billing_mode inválido %q", domain.ErrInvalidInput, in.BillingMode)
	}
	if err := validatePricing(in.Pricing); err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID, platformID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, in.CompanyID)
	}

	commercialStatus := entity.CommercialPendingQuote
	if in.BillingMode == entity.BillingInternalOnly {
		commercialStatus = entity.CommercialInternal
	}

	now := time.Now()
	request := &entity.ServiceRequest{
		ID:               uuid.New().String(),
		PlatformID:       platformID,
		CompanyID:        in.CompanyID,
		ReferenceID:      newReferenceID("SRV", now),
		Title:            in.Title,
		Description:      in.Description,
		Status:           entity.RequestDraft,
		BillingMode:      in.BillingMode,
		CommercialStatus: commercialStatus,
		ContactName:      in.ContactName,
		ContactEmail:     in.ContactEmail,
		ContactPhone:     in.ContactPhone,
		RequestedFor:     in.RequestedFor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.RunCommercial(ctx, func(
		_ repository.OrderRepository,
		requestRepo repository.ServiceRequestRepository,
		pricingRepo repository.PricingRepository,
		lineItemRepo repository.LineItemRepository,
		_ repository.InvoiceRepository,
	) error {
		if err := requestRepo.Create(request); err != nil {
			return err
		}
		if err := pricingRepo.Create(pricingRecord(platformID, entity.ContextTypeServiceRequest, request.ID, in.Pricing, now)); err != nil {
			return err
		}
		return createLineItems(lineItemRepo, platformID, entity.ContextTypeServiceRequest, request.ID, in.LineItems, now)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func validatePricing(in dto.PricingInput) error {
	if pricing.DecimalFromString(in.MarginPercent).LessThan(decimal.Zero) {
		return fmt.Errorf("%w: el margen no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// pricingRecord coerciona los montos del payload: cadena vacía o ilegible vale
// cero, un componente opcional nunca tumba la creación.
func pricingRecord(platformID, contextType, contextID string, in dto.PricingInput, now time.Time) *entity.PricingRecord {
	return &entity.PricingRecord{
		ID:            uuid.New().String(),
		PlatformID:    platformID,
		ContextType:   contextType,
		ContextID:     contextID,
		BaseOpsTotal:  pricing.DecimalFromString(in.BaseOpsTotal),
		TransportRate: pricing.DecimalFromString(in.TransportRate),
		CatalogTotal:  pricing.DecimalFromString(in.CatalogTotal),
		CustomTotal:   pricing.DecimalFromString(in.CustomTotal),
		MarginPercent: pricing.DecimalFromString(in.MarginPercent),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func createLineItems(repo repository.LineItemRepository, platformID, contextType, contextID string, items []dto.LineItemInput, now time.Time) error {
	for _, it := range items {
		if it.Description == "" {
			return fmt.Errorf("%w: toda línea requiere descripción", domain.ErrInvalidInput)
		}
		mode := it.BillingMode
		if mode == "" {
			mode = entity.LineBillable
		}
		if mode != entity.LineBillable && mode != entity.LineComplimentary {
			return fmt.Errorf("%w: billing_mode de línea inválido %q", domain.ErrInvalidInput, it.BillingMode)
		}
		err := repo.Create(&entity.LineItem{
			ID:          uuid.New().String(),
			PlatformID:  platformID,
			ContextType: contextType,
			ContextID:   contextID,
			Description: it.Description,
			Quantity:    it.Quantity,
			BuyTotal:    it.BuyTotal,
			Category:    it.Category,
			BillingMode: mode,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// newReferenceID genera el código legible de la entidad: PRE-YYYYMMDD-XXXXXX.
func newReferenceID(prefix string, now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), short)
}
