package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/domain/entity"
)

// ReportHandler expone el reporte comercial por rango de fechas.
type ReportHandler struct {
	builder *commercial.ContextBuilder
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(builder *commercial.ContextBuilder) *ReportHandler {
	return &ReportHandler{builder: builder}
}

// Commercial godoc
// @Summary      Reporte comercial por rango de fechas
// @Description  Lista los contextos comerciales (órdenes, solicitudes o ambos)
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true   "fecha inicial YYYY-MM-DD"
// @Param        to    query  string  true   "fecha final YYYY-MM-DD"
// @Param        type  query  string  false  "ORDER | SERVICE_REQUEST | ALL (default)"
// @Success      200   {array}   dto.CommercialContextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/commercial [get]
func (h *ReportHandler) Commercial(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return badRequest(c, "from debe ser YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return badRequest(c, "to debe ser YYYY-MM-DD")
	}
	// El rango es inclusivo: el día final cuenta completo.
	to = to.Add(24*time.Hour - time.Nanosecond)
	if to.Before(from) {
		return badRequest(c, "el rango de fechas está invertido")
	}

	actor := GetActor(c)
	var contexts []*commercial.Context
	switch c.Query("type", "ALL") {
	case entity.ContextTypeOrder:
		contexts, err = h.builder.ListOrderCommercialContexts(c.Context(), actor.PlatformID, from, to)
	case entity.ContextTypeServiceRequest:
		contexts, err = h.builder.ListServiceRequestCommercialContexts(c.Context(), actor.PlatformID, from, to)
	case "ALL":
		contexts, err = h.builder.ListAllCommercialContexts(c.Context(), actor.PlatformID, from, to)
	default:
		return badRequest(c, "type debe ser ORDER, SERVICE_REQUEST o ALL")
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(commercial.ToResponses(actor.Role, contexts))
}
