package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/company"
	"github.com/mesharis-cell/platform-api/internal/application/dto"
)

// CompanyHandler maneja las empresas cliente.
type CompanyHandler struct {
	uc *company.UseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *company.UseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear empresa cliente
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	actor := GetActor(c)
	out, err := h.uc.Create(actor.PlatformID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "company id"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.uc.GetByID(c.Params("id"), actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empresas de la plataforma
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	actor := GetActor(c)
	out, err := h.uc.List(actor.PlatformID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
