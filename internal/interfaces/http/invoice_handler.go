package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
)

// InvoiceHandler maneja las facturas por ID.
type InvoiceHandler struct {
	invoiceUC *commercial.InvoiceUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(invoiceUC *commercial.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "invoice id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	actor := GetActor(c)
	inv, err := h.invoiceUC.GetInvoice(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(commercial.ToInvoiceResponse(inv))
}

// ConfirmPayment godoc
// @Summary      Confirmar el pago de una factura
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "invoice id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/confirm-payment [post]
func (h *InvoiceHandler) ConfirmPayment(c *fiber.Ctx) error {
	actor := GetActor(c)
	inv, err := h.invoiceUC.ConfirmPayment(c.Context(), actor, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(commercial.ToInvoiceResponse(inv))
}
