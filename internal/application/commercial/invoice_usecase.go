package commercial

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/application/notify"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/policy"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
	"github.com/mesharis-cell/platform-api/pkg/logger"
)

const (
	invoiceNumberPrefix = "INV"
	maxDailyInvoices    = 999
	pdfContentType      = "application/pdf"
)

// InvoiceUseCase orquesta el ciclo de facturación: numeración, render del PDF,
// subida al almacenamiento y flip de estado comercial. La primera generación es
// transaccional (insert de factura + estado comercial INVOICED); la
// regeneración reusa el número y solo reemplaza el PDF.
type InvoiceUseCase struct {
	txRunner    TxRunner
	builder     *ContextBuilder
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	requestRepo repository.ServiceRequestRepository
	storage     ObjectStorage
	renderer    DocumentRenderer
	sender      notify.Sender
	log         *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner TxRunner,
	builder *ContextBuilder,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	requestRepo repository.ServiceRequestRepository,
	storage ObjectStorage,
	renderer DocumentRenderer,
	sender notify.Sender,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		builder:     builder,
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		requestRepo: requestRepo,
		storage:     storage,
		renderer:    renderer,
		sender:      sender,
		log:         log,
	}
}

// Generate emite (o regenera) la factura de una entidad comercial.
//
// Primera emisión: valida elegibilidad, toma el siguiente número de la
// secuencia diaria, renderiza el PDF lado-venta, lo sube y persiste factura +
// estado comercial INVOICED en una transacción. Regeneración: exige factura
// existente no pagada, reusa el número, borra el PDF anterior y escribe el
// nuevo en la misma clave.
func (uc *InvoiceUseCase) Generate(ctx context.Context, actor Actor, contextType, contextID string, regenerate bool) (*entity.Invoice, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: solo personal de plataforma genera facturas", domain.ErrForbidden)
	}

	c, err := uc.builder.Build(ctx, contextType, contextID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if err := assertInvoiceEligibility(c, regenerate); err != nil {
		return nil, err
	}

	existing, err := uc.invoiceRepo.GetByContext(contextType, contextID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if !regenerate && existing != nil {
		return nil, fmt.Errorf("%w: la entidad %s ya tiene factura %s", domain.ErrConflict, c.ReferenceID, existing.Number)
	}
	if regenerate {
		if existing == nil {
			return nil, fmt.Errorf("%w: la entidad %s no tiene factura para regenerar", domain.ErrNotFound, c.ReferenceID)
		}
		if existing.PaidAt != nil {
			return nil, fmt.Errorf("%w: la factura %s está pagada", domain.ErrInvoiceLocked, existing.Number)
		}
	}

	now := time.Now()
	number := ""
	if existing != nil {
		number = existing.Number
	} else {
		number, err = uc.nextInvoiceNumber(actor.PlatformID, now)
		if err != nil {
			return nil, err
		}
	}

	payload := BuildDocumentPayload(c, AudienceSellSide, DocumentInvoice, number, actor.UserID)
	pdf, err := uc.renderer.Render(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("renderizar factura: %w", err)
	}

	key := BuildInvoiceS3Key(c.Company.Name, contextType, number)
	if regenerate {
		// Borrar-luego-escribir: la clave es determinística, así que un borrado
		// fallido solo significa que la subida sobreescribe. Se registra y sigue.
		if err := uc.storage.Delete(ctx, key); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo borrar el PDF anterior")
		}
	}
	if err := uc.storage.Upload(ctx, key, pdf, pdfContentType); err != nil {
		return nil, fmt.Errorf("subir factura: %w", err)
	}
	pdfURL := uc.storage.PublicURL(key)

	if regenerate {
		if err := uc.invoiceRepo.UpdatePDF(existing.ID, actor.PlatformID, pdfURL, actor.UserID, now); err != nil {
			return nil, err
		}
		existing.PDFURL = pdfURL
		existing.GeneratedBy = actor.UserID
		existing.UpdatedAt = now
		return existing, nil
	}

	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		PlatformID:  actor.PlatformID,
		ContextType: contextType,
		ContextID:   contextID,
		Number:      number,
		PDFURL:      pdfURL,
		GeneratedBy: actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Insert + flip comercial atómicos: si dos peticiones compiten, el
	// constraint único (plataforma, contexto) deja pasar una sola.
	err = uc.txRunner.RunCommercial(ctx, func(
		orderRepo repository.OrderRepository,
		requestRepo repository.ServiceRequestRepository,
		_ repository.PricingRepository,
		_ repository.LineItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		if err := policy.AssertCommercialTransition(c.BillingMode, c.CommercialStatus, entity.CommercialInvoiced); err != nil {
			return err
		}
		if contextType == entity.ContextTypeOrder {
			return orderRepo.UpdateCommercialStatus(contextID, actor.PlatformID, entity.CommercialInvoiced, now)
		}
		return requestRepo.UpdateCommercialStatus(contextID, actor.PlatformID, entity.CommercialInvoiced, now)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyInvoice(ctx, notify.EventInvoiceGenerated, c, number)
	return invoice, nil
}

// ConfirmPayment marca la factura como pagada y lleva la entidad a PAID, en una
// sola transacción. Una factura pagada ya no admite regeneraciones.
func (uc *InvoiceUseCase) ConfirmPayment(ctx context.Context, actor Actor, invoiceID string) (*entity.Invoice, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: solo personal de plataforma confirma pagos", domain.ErrForbidden)
	}
	invoice, err := uc.invoiceRepo.GetByID(invoiceID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	if invoice.PaidAt != nil {
		return invoice, nil // ya pagada: idempotente
	}

	c, err := uc.builder.Build(ctx, invoice.ContextType, invoice.ContextID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if err := policy.AssertCommercialTransition(c.BillingMode, c.CommercialStatus, entity.CommercialPaid); err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.RunCommercial(ctx, func(
		orderRepo repository.OrderRepository,
		requestRepo repository.ServiceRequestRepository,
		_ repository.PricingRepository,
		_ repository.LineItemRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		if err := invoiceRepo.MarkPaid(invoice.ID, actor.PlatformID, now); err != nil {
			return err
		}
		if invoice.ContextType == entity.ContextTypeOrder {
			return orderRepo.UpdateCommercialStatus(invoice.ContextID, actor.PlatformID, entity.CommercialPaid, now)
		}
		return requestRepo.UpdateCommercialStatus(invoice.ContextID, actor.PlatformID, entity.CommercialPaid, now)
	})
	if err != nil {
		return nil, err
	}
	invoice.PaidAt = &now
	invoice.UpdatedAt = now

	uc.notifyInvoice(ctx, notify.EventPaymentConfirmed, c, invoice.Number)
	return invoice, nil
}

// GetInvoice lee una factura. LOGISTICS no tiene acceso; un CLIENT solo ve
// facturas de su propia empresa.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, actor Actor, invoiceID string) (*entity.Invoice, error) {
	if err := policy.AssertCanViewInvoices(actor.Role); err != nil {
		return nil, err
	}
	invoice, err := uc.invoiceRepo.GetByID(invoiceID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, invoiceID)
	}
	if actor.Role == entity.RoleClient {
		companyID, err := uc.contextCompanyID(invoice.ContextType, invoice.ContextID, actor.PlatformID)
		if err != nil {
			return nil, err
		}
		if companyID != actor.CompanyID {
			return nil, fmt.Errorf("%w: la factura pertenece a otra empresa", domain.ErrForbidden)
		}
	}
	return invoice, nil
}

// GetInvoiceByContext lee la factura de una entidad comercial, si existe.
func (uc *InvoiceUseCase) GetInvoiceByContext(ctx context.Context, actor Actor, contextType, contextID string) (*entity.Invoice, error) {
	if err := policy.AssertCanViewInvoices(actor.Role); err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleClient {
		companyID, err := uc.contextCompanyID(contextType, contextID, actor.PlatformID)
		if err != nil {
			return nil, err
		}
		if companyID != actor.CompanyID {
			return nil, fmt.Errorf("%w: la entidad pertenece a otra empresa", domain.ErrForbidden)
		}
	}
	invoice, err := uc.invoiceRepo.GetByContext(contextType, contextID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: la entidad %s no tiene factura", domain.ErrNotFound, contextID)
	}
	return invoice, nil
}

// nextInvoiceNumber toma el siguiente número de la secuencia diaria de la
// plataforma: INV-YYYYMMDD-### (fecha UTC, arranca en 001 cada día).
func (uc *InvoiceUseCase) nextInvoiceNumber(platformID string, now time.Time) (string, error) {
	prefix := fmt.Sprintf("%s-%s-", invoiceNumberPrefix, now.UTC().Format("20060102"))
	last, err := uc.invoiceRepo.LastNumberWithPrefix(platformID, prefix)
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("número de factura corrupto %q: %w", last, err)
		}
		seq = n + 1
	}
	if seq > maxDailyInvoices {
		return "", fmt.Errorf("%w: secuencia diaria de facturas agotada (%d)", domain.ErrConflict, maxDailyInvoices)
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// assertInvoiceEligibility aplica las reglas de facturabilidad según el tipo de
// entidad.
func assertInvoiceEligibility(c *Context, regenerate bool) error {
	if c.ContextType == entity.ContextTypeOrder {
		return policy.AssertOrderCanGenerateInvoice(c.OperationalStatus)
	}
	return policy.AssertServiceRequestCanGenerateInvoice(c.BillingMode, c.CommercialStatus, c.OperationalStatus, regenerate)
}

func (uc *InvoiceUseCase) notifyInvoice(ctx context.Context, ev notify.Event, c *Context, number string) {
	msgs := notify.BuildMessages(notify.Input{
		Event:        ev,
		PlatformID:   c.PlatformID,
		ReferenceID:  c.ReferenceID,
		CompanyName:  c.Company.Name,
		ContactName:  c.Contact.Name,
		ContactEmail: c.Contact.Email,
		Detail:       number,
	})
	if err := uc.sender.Send(ctx, msgs); err != nil {
		uc.log.Warn().Err(err).Str("event", string(ev)).Str("invoice", number).Msg("notificación no entregada")
	}
}

func (uc *InvoiceUseCase) contextCompanyID(contextType, contextID, platformID string) (string, error) {
	switch contextType {
	case entity.ContextTypeOrder:
		order, err := uc.orderRepo.GetByID(contextID, platformID)
		if err != nil {
			return "", err
		}
		if order == nil {
			return "", fmt.Errorf("%w: orden %s", domain.ErrNotFound, contextID)
		}
		return order.CompanyID, nil
	case entity.ContextTypeServiceRequest:
		request, err := uc.requestRepo.GetByID(contextID, platformID)
		if err != nil {
			return "", err
		}
		if request == nil {
			return "", fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, contextID)
		}
		return request.CompanyID, nil
	default:
		return "", fmt.Errorf("%w: tipo de contexto desconocido %q", domain.ErrInvalidInput, contextType)
	}
}

// ToInvoiceResponse proyecta la entidad al DTO de salida.
func ToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID,
		ContextType: inv.ContextType,
		ContextID:   inv.ContextID,
		Number:      inv.Number,
		PDFURL:      inv.PDFURL,
		PaidAt:      inv.PaidAt,
		GeneratedBy: inv.GeneratedBy,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}
