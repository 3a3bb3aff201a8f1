package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// OrderHandler maneja las órdenes de alquiler y su ciclo comercial.
type OrderHandler struct {
	createUC   *commercial.CreateUseCase
	statusUC   *commercial.StatusUseCase
	invoiceUC  *commercial.InvoiceUseCase
	estimateUC *commercial.EstimateUseCase
	builder    *commercial.ContextBuilder
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(
	createUC *commercial.CreateUseCase,
	statusUC *commercial.StatusUseCase,
	invoiceUC *commercial.InvoiceUseCase,
	estimateUC *commercial.EstimateUseCase,
	builder *commercial.ContextBuilder,
) *OrderHandler {
	return &OrderHandler{
		createUC:   createUC,
		statusUC:   statusUC,
		invoiceUC:  invoiceUC,
		estimateUC: estimateUC,
		builder:    builder,
	}
}

// Create godoc
// @Summary      Crear orden de alquiler
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "orden con precios y líneas"
// @Success      201   {object}  dto.CommercialContextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	actor := GetActor(c)
	// Un cliente solo crea órdenes para su propia empresa.
	if actor.Role == entity.RoleClient {
		in.CompanyID = actor.CompanyID
	}
	order, err := h.createUC.CreateOrder(c.Context(), actor.PlatformID, in)
	if err != nil {
		return respondError(c, err)
	}
	ctx, err := h.builder.BuildOrderContext(c.Context(), order.ID, actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(commercial.ToResponse(actor.Role, ctx))
}

// GetByID godoc
// @Summary      Obtener el contexto comercial de una orden
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  dto.CommercialContextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	actor := GetActor(c)
	ctx, err := h.builder.BuildOrderContext(c.Context(), c.Params("id"), actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	if actor.Role == entity.RoleClient && ctx.Company.ID != actor.CompanyID {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otra empresa"})
	}
	return c.JSON(commercial.ToResponse(actor.Role, ctx))
}

// UpdateStatus godoc
// @Summary      Transicionar el estado operativo de una orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "order id"
// @Param        body  body  dto.TransitionRequest  true  "estado destino"
// @Success      200   {object}  dto.CommercialContextResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [post]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil || in.Target == "" {
		return badRequest(c, "target es requerido")
	}
	actor := GetActor(c)
	if _, err := h.statusUC.TransitionOrderStatus(c.Context(), actor, c.Params("id"), in.Target); err != nil {
		return respondError(c, err)
	}
	return h.GetByID(c)
}

// UpdateCommercialStatus godoc
// @Summary      Transicionar el estado comercial de una orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "order id"
// @Param        body  body  dto.TransitionRequest  true  "estado comercial destino"
// @Success      200   {object}  dto.CommercialContextResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/commercial-status [post]
func (h *OrderHandler) UpdateCommercialStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil || in.Target == "" {
		return badRequest(c, "target es requerido")
	}
	actor := GetActor(c)
	if _, err := h.statusUC.TransitionOrderCommercialStatus(c.Context(), actor, c.Params("id"), in.Target); err != nil {
		return respondError(c, err)
	}
	return h.GetByID(c)
}

// GenerateEstimate godoc
// @Summary      Generar el PDF de cotización de una orden
// @Tags         orders
// @Produce      json
// @Param        id        path   string  true   "order id"
// @Param        audience  query  string  false  "SELL_SIDE (default) | BUY_SIDE"
// @Success      200  {object}  dto.EstimateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/estimate [post]
func (h *OrderHandler) GenerateEstimate(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.estimateUC.GenerateEstimate(c.Context(), actor,
		entity.ContextTypeOrder, c.Params("id"), commercial.Audience(c.Query("audience")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateInvoice godoc
// @Summary      Generar (o regenerar) la factura de una orden
// @Tags         orders
// @Produce      json
// @Param        id          path   string  true   "order id"
// @Param        regenerate  query  bool    false  "regenerar el PDF de la factura existente"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/invoice [post]
func (h *OrderHandler) GenerateInvoice(c *fiber.Ctx) error {
	actor := GetActor(c)
	regenerate := c.QueryBool("regenerate")
	inv, err := h.invoiceUC.Generate(c.Context(), actor, entity.ContextTypeOrder, c.Params("id"), regenerate)
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
// @Summary      Obtener la factura de una orden
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/invoice [get]
func (h *OrderHandler) GetInvoice(c *fiber.Ctx) error {
	actor := GetActor(c)
	inv, err := h.invoiceUC.GetInvoiceByContext(c.Context(), actor, entity.ContextTypeOrder, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(commercial.ToInvoiceResponse(inv))
}
