package commercial

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/pricing"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Valor de relleno para campos de texto ausentes: la capa de PDF nunca debe
// recibir cadenas vacías ni nulos.
const placeholderNA = "N/A"

// CompanyBlock datos de la empresa cliente ya normalizados.
type CompanyBlock struct {
	ID      string
	Name    string
	TaxID   string
	Email   string
	Phone   string
	Address string
}

// ContactBlock contacto operativo con cadena de fallback aplicada
// (entidad -> empresa -> "N/A").
type ContactBlock struct {
	Name  string
	Email string
	Phone string
}

// VenueBlock lugar del evento; en solicitudes de servicio son placeholders.
type VenueBlock struct {
	Name    string
	Address string
	City    string
}

// TimelineBlock ventana temporal de la entidad; fechas ausentes caen a "ahora".
type TimelineBlock struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// NormalizedPricing precios compra y venta derivados del registro persistido.
type NormalizedPricing struct {
	Buy     pricing.Input
	Summary pricing.Summary
}

// NormalizedLineItem línea lista para documentos: totales compra/venta y
// tarifas unitarias ya calculadas.
type NormalizedLineItem struct {
	LineItemID   string
	Description  string
	Quantity     decimal.Decimal
	Category     string
	BillingMode  string
	BuyTotal     decimal.Decimal
	SellTotal    decimal.Decimal
	BuyUnitRate  decimal.Decimal
	SellUnitRate decimal.Decimal
}

// Context es la proyección unificada de una entidad comercial que consumen
// PDFs, correos y reportes. Es transitoria y derivada: se construye fresca en
// cada lectura, nunca se cachea ni se muta.
type Context struct {
	ContextType       string // ORDER | SERVICE_REQUEST
	ContextID         string
	PlatformID        string
	ReferenceID       string
	OperationalStatus string
	CommercialStatus  string
	BillingMode       string
	Company           CompanyBlock
	Contact           ContactBlock
	Venue             VenueBlock
	Timeline          TimelineBlock
	Pricing           NormalizedPricing
	LineItems         []NormalizedLineItem
}

// ContextBuilder carga una entidad comercial con su grafo (empresa, precios,
// líneas) y la proyecta al Context unificado.
type ContextBuilder struct {
	orderRepo    repository.OrderRepository
	requestRepo  repository.ServiceRequestRepository
	companyRepo  repository.CompanyRepository
	pricingRepo  repository.PricingRepository
	lineItemRepo repository.LineItemRepository
}

// NewContextBuilder construye el normalizador.
func NewContextBuilder(
	orderRepo repository.OrderRepository,
	requestRepo repository.ServiceRequestRepository,
	companyRepo repository.CompanyRepository,
	pricingRepo repository.PricingRepository,
	lineItemRepo repository.LineItemRepository,
) *ContextBuilder {
	return &ContextBuilder{
		orderRepo:    orderRepo,
		requestRepo:  requestRepo,
		companyRepo:  companyRepo,
		pricingRepo:  pricingRepo,
		lineItemRepo: lineItemRepo,
	}
}

// Build despacha según el tipo de contexto.
func (b *ContextBuilder) Build(ctx context.Context, contextType, contextID, platformID string) (*Context, error) {
	switch contextType {
	case entity.ContextTypeOrder:
		return b.BuildOrderContext(ctx, contextID, platformID)
	case entity.ContextTypeServiceRequest:
		return b.BuildServiceRequestContext(ctx, contextID, platformID)
	default:
		return nil, fmt.Errorf("%w: tipo de contexto desconocido %q", domain.ErrInvalidInput, contextType)
	}
}

// BuildOrderContext carga y normaliza una orden. Entidad, empresa o registro de
// precios ausentes son fallas distintas, nunca valores por defecto silenciosos.
func (b *ContextBuilder) BuildOrderContext(ctx context.Context, orderID, platformID string) (*Context, error) {
	order, err := b.orderRepo.GetByID(orderID, platformID)
	if err != nil {
		return nil, fmt.Errorf("cargar orden: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
	}
	return b.normalizeOrder(ctx, order)
}

// BuildServiceRequestContext carga y normaliza una solicitud de servicio.
func (b *ContextBuilder) BuildServiceRequestContext(ctx context.Context, requestID, platformID string) (*Context, error) {
	request, err := b.requestRepo.GetByID(requestID, platformID)
	if err != nil {
		return nil, fmt.Errorf("cargar solicitud: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, requestID)
	}
	return b.normalizeRequest(ctx, request)
}

func (b *ContextBuilder) normalizeOrder(ctx context.Context, order *entity.Order) (*Context, error) {
	company, record, items, err := b.loadGraph(entity.ContextTypeOrder, order.ID, order.PlatformID, order.CompanyID)
	if err != nil {
		return nil, err
	}

	normalized := buildPricing(record)
	start := fallbackTime(order.StartsAt, time.Now())
	end := fallbackTime(order.EndsAt, start)

	return &Context{
		ContextType:       entity.ContextTypeOrder,
		ContextID:         order.ID,
		PlatformID:        order.PlatformID,
		ReferenceID:       order.ReferenceID,
		OperationalStatus: order.Status,
		CommercialStatus:  order.CommercialStatus,
		BillingMode:       entity.BillingClientBillable, // las órdenes siempre se facturan al cliente
		Company:           companyBlock(company),
		Contact: ContactBlock{
			Name:  fallback(order.ContactName, company.ContactName),
			Email: fallback(order.ContactEmail, company.ContactEmail),
			Phone: fallback(order.ContactPhone, company.Phone),
		},
		Venue: VenueBlock{
			Name:    fallback(order.VenueName, ""),
			Address: fallback(order.VenueAddress, ""),
			City:    fallback(order.VenueCity, ""),
		},
		Timeline:  TimelineBlock{StartsAt: start, EndsAt: end},
		Pricing:   normalized,
		LineItems: normalizeLineItems(items, record.MarginPercent),
	}, nil
}

func (b *ContextBuilder) normalizeRequest(ctx context.Context, request *entity.ServiceRequest) (*Context, error) {
	company, record, items, err := b.loadGraph(entity.ContextTypeServiceRequest, request.ID, request.PlatformID, request.CompanyID)
	if err != nil {
		return nil, err
	}

	normalized := buildPricing(record)
	start := fallbackTime(request.RequestedFor, time.Now())

	return &Context{
		ContextType:       entity.ContextTypeServiceRequest,
		ContextID:         request.ID,
		PlatformID:        request.PlatformID,
		ReferenceID:       request.ReferenceID,
		OperationalStatus: request.Status,
		CommercialStatus:  request.CommercialStatus,
		BillingMode:       request.BillingMode,
		Company:           companyBlock(company),
		Contact: ContactBlock{
			Name:  fallback(request.ContactName, company.ContactName),
			Email: fallback(request.ContactEmail, company.ContactEmail),
			Phone: fallback(request.ContactPhone, company.Phone),
		},
		// Las solicitudes no tienen venue: placeholders estables para el PDF.
		Venue: VenueBlock{
			Name:    "Service Request",
			Address: placeholderNA,
			City:    placeholderNA,
		},
		Timeline:  TimelineBlock{StartsAt: start, EndsAt: start},
		Pricing:   normalized,
		LineItems: normalizeLineItems(items, record.MarginPercent),
	}, nil
}

// loadGraph trae empresa, registro de precios y líneas; cada ausencia es su
// propia falla.
func (b *ContextBuilder) loadGraph(contextType, contextID, platformID, companyID string) (*entity.Company, *entity.PricingRecord, []*entity.LineItem, error) {
	company, err := b.companyRepo.GetByID(companyID, platformID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar empresa: %w", err)
	}
	if company == nil {
		return nil, nil, nil, fmt.Errorf("%w: empresa %s", domain.ErrNotFound, companyID)
	}
	record, err := b.pricingRepo.GetByContext(contextType, contextID, platformID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar precios: %w", err)
	}
	if record == nil {
		return nil, nil, nil, fmt.Errorf("%w: registro de precios del contexto %s", domain.ErrInvalidInput, contextID)
	}
	items, err := b.lineItemRepo.ListByContext(contextType, contextID, platformID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar líneas: %w", err)
	}
	return company, record, items, nil
}

// ListOrderCommercialContexts normaliza todas las órdenes del rango.
func (b *ContextBuilder) ListOrderCommercialContexts(ctx context.Context, platformID string, from, to time.Time) ([]*Context, error) {
	orders, err := b.orderRepo.ListByDateRange(platformID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar órdenes: %w", err)
	}
	contexts := make([]*Context, 0, len(orders))
	for _, o := range orders {
		c, err := b.normalizeOrder(ctx, o)
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, c)
	}
	return contexts, nil
}

// ListServiceRequestCommercialContexts normaliza todas las solicitudes del rango.
func (b *ContextBuilder) ListServiceRequestCommercialContexts(ctx context.Context, platformID string, from, to time.Time) ([]*Context, error) {
	requests, err := b.requestRepo.ListByDateRange(platformID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar solicitudes: %w", err)
	}
	contexts := make([]*Context, 0, len(requests))
	for _, r := range requests {
		c, err := b.normalizeRequest(ctx, r)
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, c)
	}
	return contexts, nil
}

// ListAllCommercialContexts mezcla órdenes y solicitudes del rango en un solo
// arreglo ordenado por inicio de línea de tiempo.
func (b *ContextBuilder) ListAllCommercialContexts(ctx context.Context, platformID string, from, to time.Time) ([]*Context, error) {
	orders, err := b.ListOrderCommercialContexts(ctx, platformID, from, to)
	if err != nil {
		return nil, err
	}
	requests, err := b.ListServiceRequestCommercialContexts(ctx, platformID, from, to)
	if err != nil {
		return nil, err
	}
	all := append(orders, requests...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timeline.StartsAt.Before(all[j].Timeline.StartsAt)
	})
	return all, nil
}

func buildPricing(record *entity.PricingRecord) NormalizedPricing {
	in := pricing.Input{
		BaseOpsTotal:  record.BaseOpsTotal,
		TransportRate: record.TransportRate,
		CatalogTotal:  record.CatalogTotal,
		CustomTotal:   record.CustomTotal,
		MarginPercent: record.MarginPercent,
	}
	return NormalizedPricing{Buy: in, Summary: pricing.Compute(in)}
}

// normalizeLineItems filtra las líneas anuladas y calcula totales venta y
// tarifas unitarias. Cantidad cero o negativa produce tarifa cero, nunca una
// división por cero.
func normalizeLineItems(items []*entity.LineItem, marginPercent decimal.Decimal) []NormalizedLineItem {
	out := make([]NormalizedLineItem, 0, len(items))
	for _, it := range items {
		if it.Voided {
			continue
		}
		if it.BillingMode != entity.LineBillable && it.BillingMode != entity.LineComplimentary {
			continue
		}
		sellTotal := pricing.ApplyMarginPerLine(it.BuyTotal, marginPercent)
		buyUnit, sellUnit := decimal.Zero, decimal.Zero
		if it.Quantity.GreaterThan(decimal.Zero) {
			buyUnit = pricing.RoundCurrency(it.BuyTotal.Div(it.Quantity))
			sellUnit = pricing.RoundCurrency(sellTotal.Div(it.Quantity))
		}
		out = append(out, NormalizedLineItem{
			LineItemID:   it.ID,
			Description:  fallback(it.Description, ""),
			Quantity:     it.Quantity,
			Category:     it.Category,
			BillingMode:  it.BillingMode,
			BuyTotal:     pricing.RoundCurrency(it.BuyTotal),
			SellTotal:    sellTotal,
			BuyUnitRate:  buyUnit,
			SellUnitRate: sellUnit,
		})
	}
	return out
}

func companyBlock(c *entity.Company) CompanyBlock {
	return CompanyBlock{
		ID:      c.ID,
		Name:    fallback(c.Name, ""),
		TaxID:   fallback(c.TaxID, ""),
		Email:   fallback(c.ContactEmail, ""),
		Phone:   fallback(c.Phone, ""),
		Address: fallback(c.Address, ""),
	}
}

// fallback devuelve primary si no está vacío, luego secondary, luego "N/A".
func fallback(primary, secondary string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return placeholderNA
}

func fallbackTime(t *time.Time, def time.Time) time.Time {
	if t == nil || t.IsZero() {
		return def
	}
	return *t
}
