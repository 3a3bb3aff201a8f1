package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// ServiceRequestHandler maneja las solicitudes de servicio y su ciclo comercial.
type ServiceRequestHandler struct {
	createUC   *commercial.CreateUseCase
	statusUC   *commercial.StatusUseCase
	invoiceUC  *commercial.InvoiceUseCase
	estimateUC *commercial.EstimateUseCase
	builder    *commercial.ContextBuilder
}

// NewServiceRequestHandler construye el handler de solicitudes.
func NewServiceRequestHandler(
	createUC *commercial.CreateUseCase,
	statusUC *commercial.StatusUseCase,
	invoiceUC *commercial.InvoiceUseCase,
	estimateUC *commercial.EstimateUseCase,
	builder *commercial.ContextBuilder,
) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		createUC:   createUC,
		statusUC:   statusUC,
		invoiceUC:  invoiceUC,
		estimateUC: estimateUC,
		builder:    builder,
	}
}

// Create godoc
// @Summary      Crear solicitud de servicio
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServiceRequestRequest  true  "solicitud con precios y líneas"
// @Success      201   {object}  dto.CommercialContextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/service-requests [post]
func (h *ServiceRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServiceRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	actor := GetActor(c)
	// Un cliente solo crea solicitudes para su propia empresa, y nunca en modo
	// interno (ese modo es de la plataforma).
	if actor.Role == entity.RoleClient {
		in.CompanyID = actor.CompanyID
		in.BillingMode = entity.BillingClientBillable
	}
	request, err := h.createUC.CreateServiceRequest(c.Context(), actor.PlatformID, in)
	if err != nil {
		return respondError(c, err)
	}
	ctx, err := h.builder.BuildServiceRequestContext(c.Context(), request.ID, actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(commercial.ToResponse(actor.Role, ctx))
}

// GetByID godoc
// @Summary      Obtener el contexto comercial de una solicitud
// @Tags         service-requests
// @Produce      json
// @Param        id   path      string  true  "service request id"
// @Success      200  {object}  dto.CommercialContextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id} [get]
func (h *ServiceRequestHandler) GetByID(c *fiber.Ctx) error {
	actor := GetActor(c)
	ctx, err := h.builder.BuildServiceRequestContext(c.Context(), c.Params("id"), actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	if actor.Role == entity.RoleClient && ctx.Company.ID != actor.CompanyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la solicitud pertenece a otra empresa"})
	}
	return c.JSON(commercial.ToResponse(actor.Role, ctx))
}

// UpdateStatus godoc
// @Summary      Transicionar el estado operativo de una solicitud
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "service request id"
// @Param        body  body  dto.TransitionRequest  true  "estado destino"
// @Success      200   {object}  dto.CommercialContextResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/status [post]
func (h *ServiceRequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil || in.Target == "" {
		return badRequest(c, "target es requerido")
	}
	actor := GetActor(c)
	if _, err := h.statusUC.TransitionRequestStatus(c.Context(), actor, c.Params("id"), in.Target); err != nil {
		return respondError(c, err)
	}
	return h.GetByID(c)
}

// UpdateCommercialStatus godoc
// @Summary      Transicionar el estado comercial de una solicitud
// @Tags         service-requests
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "service request id"
// @Param        body  body  dto.TransitionRequest  true  "estado comercial destino"
// @Success      200   {object}  dto.CommercialContextResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/commercial-status [post]
func (h *ServiceRequestHandler) UpdateCommercialStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil || in.Target == "" {
		return badRequest(c, "target es requerido")
	}
	actor := GetActor(c)
	if _, err := h.statusUC.TransitionRequestCommercialStatus(c.Context(), actor, c.Params("id"), in.Target); err != nil {
		return respondError(c, err)
	}
	return h.GetByID(c)
}

// ApproveQuote godoc
// @Summary      Aprobar la cotización (cliente)
// @Tags         service-requests
// @Produce      json
// @Param        id   path      string  true  "service request id"
// @Success      200  {object}  dto.CommercialContextResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/approve-quote [post]
func (h *ServiceRequestHandler) ApproveQuote(c *fiber.Ctx) error {
	actor := GetActor(c)
	if _, err := h.statusUC.ApproveServiceRequestQuote(c.Context(), actor, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return h.GetByID(c)
}

// GenerateEstimate godoc
// @Summary      Generar el PDF de cotización de una solicitud
// @Tags         service-requests
// @Produce      json
// @Param        id        path   string  true   "service request id"
// @Param        audience  query  string  false  "SELL_SIDE (default) | BUY_SIDE"
// @Success      200  {object}  dto.EstimateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/estimate [post]
func (h *ServiceRequestHandler) GenerateEstimate(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.estimateUC.GenerateEstimate(c.Context(), actor,
		entity.ContextTypeServiceRequest, c.Params("id"), commercial.Audience(c.Query("audience")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateInvoice godoc
// @Summary      Generar (o regenerar) la factura de una solicitud
// @Tags         service-requests
// @Produce      json
// @Param        id          path   string  true   "service request id"
// @Param        regenerate  query  bool    false  "regenerar el PDF de la factura existente"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/invoice [post]
func (h *ServiceRequestHandler) GenerateInvoice(c *fiber.Ctx) error {
	actor := GetActor(c)
	regenerate := c.QueryBool("regenerate")
	inv, err := h.invoiceUC.Generate(c.Context(), actor, entity.ContextTypeServiceRequest, c.Params("id"), regenerate)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusCreated
	if regenerate {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(commercial.ToInvoiceResponse(inv))
}

// GetInvoice godoc
// @Summary      Obtener la factura de una solicitud
// @Tags         service-requests
// @Produce      json
// @Param        id   path      string  true  "service request id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/service-requests/{id}/invoice [get]
func (h *ServiceRequestHandler) GetInvoice(c *fiber.Ctx) error {
	actor := GetActor(c)
	inv, err := h.invoiceUC.GetInvoiceByContext(c.Context(), actor, entity.ContextTypeServiceRequest, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(commercial.ToInvoiceResponse(inv))
}
