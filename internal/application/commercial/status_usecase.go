package commercial

import (
	"context"
	"fmt"
	"time"

	"github.com/mesharis-cell/platform-api/internal/application/notify"
	"github.com/mesharis-cell/platform-api/internal/domain"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/policy"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
	"github.com/mesharis-cell/platform-api/pkg/logger"
)

// StatusUseCase aplica transiciones de estado operativo y comercial,
// protegidas por la capa de política, y dispara las notificaciones asociadas.
type StatusUseCase struct {
	orderRepo   repository.OrderRepository
	requestRepo repository.ServiceRequestRepository
	companyRepo repository.CompanyRepository
	sender      notify.Sender
	log         *logger.Logger
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(
	orderRepo repository.OrderRepository,
	requestRepo repository.ServiceRequestRepository,
	companyRepo repository.CompanyRepository,
	sender notify.Sender,
	log *logger.Logger,
) *StatusUseCase {
	return &StatusUseCase{
		orderRepo:   orderRepo,
		requestRepo: requestRepo,
		companyRepo: companyRepo,
		sender:      sender,
		log:         log,
	}
}

// TransitionOrderStatus cambia el estado operativo de una orden.
// Reservado a personal de plataforma (ADMIN, STAFF) y LOGISTICS.
func (uc *StatusUseCase) TransitionOrderStatus(ctx context.Context, actor Actor, orderID, target string) (*entity.Order, error) {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleStaff, entity.RoleLogistics:
	default:
		return nil, fmt.Errorf("%w: el rol %s no opera órdenes", domain.ErrForbidden, actor.Role)
	}
	order, err := uc.orderRepo.GetByID(orderID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
	}
	if err := policy.AssertOrderStatusTransition(order.Status, target); err != nil {
		return nil, err
	}
	if order.Status == target {
		return order, nil // no-op silencioso
	}
	now := time.Now()
	if err := uc.orderRepo.UpdateStatus(order.ID, actor.PlatformID, target, now); err != nil {
		return nil, err
	}
	order.Status = target
	order.UpdatedAt = now

	uc.notifyEntity(ctx, notify.EventOrderStatusChanged, order.PlatformID, order.CompanyID,
		order.ReferenceID, order.ContactName, order.ContactEmail, target)
	return order, nil
}

// TransitionRequestStatus cambia el estado operativo de una solicitud.
// ADMIN/STAFF pueden cualquier transición válida; un CLIENT de la misma
// empresa solo puede enviar (SUBMITTED) o cancelar su propia solicitud.
func (uc *StatusUseCase) TransitionRequestStatus(ctx context.Context, actor Actor, requestID, target string) (*entity.ServiceRequest, error) {
	request, err := uc.requestRepo.GetByID(requestID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, requestID)
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleStaff:
	case entity.RoleClient:
		if actor.CompanyID != request.CompanyID {
			return nil, fmt.Errorf("%w: la solicitud pertenece a otra empresa", domain.ErrForbidden)
		}
		if target != entity.RequestSubmitted && target != entity.RequestCancelled {
			return nil, fmt.Errorf("%w: un cliente solo puede enviar o cancelar su solicitud", domain.ErrForbidden)
		}
	default:
		return nil, fmt.Errorf("%w: el rol %s no opera solicitudes", domain.ErrForbidden, actor.Role)
	}
	if err := policy.AssertRequestStatusTransition(request.Status, target); err != nil {
		return nil, err
	}
	if request.Status == target {
		return request, nil
	}
	now := time.Now()
	if err := uc.requestRepo.UpdateStatus(request.ID, actor.PlatformID, target, now); err != nil {
		return nil, err
	}
	request.Status = target
	request.UpdatedAt = now

	if target == entity.RequestCompleted {
		uc.notifyEntity(ctx, notify.EventRequestStatusDone, request.PlatformID, request.CompanyID,
			request.ReferenceID, request.ContactName, request.ContactEmail, target)
	}
	return request, nil
}

// TransitionOrderCommercialStatus cambia el estado comercial de una orden
// (siempre CLIENT_BILLABLE). Solo ADMIN/STAFF.
func (uc *StatusUseCase) TransitionOrderCommercialStatus(ctx context.Context, actor Actor, orderID, target string) (*entity.Order, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: solo personal de plataforma cambia estados comerciales", domain.ErrForbidden)
	}
	order, err := uc.orderRepo.GetByID(orderID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, orderID)
	}
	if err := policy.AssertCommercialTransition(entity.BillingClientBillable, order.CommercialStatus, target); err != nil {
		return nil, err
	}
	if order.CommercialStatus == target {
		return order, nil
	}
	now := time.Now()
	if err := uc.orderRepo.UpdateCommercialStatus(order.ID, actor.PlatformID, target, now); err != nil {
		return nil, err
	}
	order.CommercialStatus = target
	order.UpdatedAt = now

	if target == entity.CommercialQuoted {
		uc.notifyEntity(ctx, notify.EventQuoteIssued, order.PlatformID, order.CompanyID,
			order.ReferenceID, order.ContactName, order.ContactEmail, target)
	}
	return order, nil
}

// TransitionRequestCommercialStatus cambia el estado comercial de una
// solicitud según su modo de facturación. Solo ADMIN/STAFF.
func (uc *StatusUseCase) TransitionRequestCommercialStatus(ctx context.Context, actor Actor, requestID, target string) (*entity.ServiceRequest, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleStaff {
		return nil, fmt.Errorf("%w: solo personal de plataforma cambia estados comerciales", domain.ErrForbidden)
	}
	request, err := uc.requestRepo.GetByID(requestID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, requestID)
	}
	if err := policy.AssertCommercialTransition(request.BillingMode, request.CommercialStatus, target); err != nil {
		return nil, err
	}
	if request.CommercialStatus == target {
		return request, nil
	}
	now := time.Now()
	if err := uc.requestRepo.UpdateCommercialStatus(request.ID, actor.PlatformID, target, now); err != nil {
		return nil, err
	}
	request.CommercialStatus = target
	request.UpdatedAt = now

	if target == entity.CommercialQuoted {
		uc.notifyEntity(ctx, notify.EventQuoteIssued, request.PlatformID, request.CompanyID,
			request.ReferenceID, request.ContactName, request.ContactEmail, target)
	}
	return request, nil
}

// ApproveServiceRequestQuote aprueba la cotización en nombre del cliente.
// Exige rol CLIENT de la misma empresa, modo CLIENT_BILLABLE y estado QUOTED.
func (uc *StatusUseCase) ApproveServiceRequestQuote(ctx context.Context, actor Actor, requestID string) (*entity.ServiceRequest, error) {
	if actor.Role != entity.RoleClient {
		return nil, fmt.Errorf("%w: solo el cliente aprueba cotizaciones", domain.ErrForbidden)
	}
	request, err := uc.requestRepo.GetByID(requestID, actor.PlatformID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, requestID)
	}
	if actor.CompanyID != request.CompanyID {
		return nil, fmt.Errorf("%w: la solicitud pertenece a otra empresa", domain.ErrForbidden)
	}
	if err := policy.AssertClientCanApproveServiceRequestQuote(request.BillingMode, request.CommercialStatus); err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.requestRepo.UpdateCommercialStatus(request.ID, actor.PlatformID, entity.CommercialQuoteApproved, now); err != nil {
		return nil, err
	}
	request.CommercialStatus = entity.CommercialQuoteApproved
	request.UpdatedAt = now

	uc.notifyEntity(ctx, notify.EventQuoteApproved, request.PlatformID, request.CompanyID,
		request.ReferenceID, request.ContactName, request.ContactEmail, "")
	return request, nil
}

// notifyEntity arma los mensajes del evento y los entrega. Un fallo de envío
// se registra pero jamás revierte la transición ya persistida.
func (uc *StatusUseCase) notifyEntity(ctx context.Context, ev notify.Event, platformID, companyID, referenceID, contactName, contactEmail, detail string) {
	companyName := ""
	if company, err := uc.companyRepo.GetByID(companyID, platformID); err == nil && company != nil {
		companyName = company.Name
		if contactEmail == "" {
			contactEmail = company.ContactEmail
		}
		if contactName == "" {
			contactName = company.ContactName
		}
	}
	msgs := notify.BuildMessages(notify.Input{
		Event:        ev,
		PlatformID:   platformID,
		ReferenceID:  referenceID,
		CompanyName:  companyName,
		ContactName:  contactName,
		ContactEmail: contactEmail,
		Detail:       detail,
	})
	if err := uc.sender.Send(ctx, msgs); err != nil {
		uc.log.Warn().Err(err).Str("event", string(ev)).Str("reference", referenceID).Msg("notificación no entregada")
	}
}
