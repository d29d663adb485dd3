package http

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

// BadgeTemplateHandler maneja las peticiones HTTP para los templates de crachá.
type BadgeTemplateHandler struct {
	uc      *usecase.BadgeTemplateUseCase
	printUC *printing.PrintUseCase
	log     *logger.Logger
}

// NewBadgeTemplateHandler construye el handler inyectando los casos de uso.
func NewBadgeTemplateHandler(uc *usecase.BadgeTemplateUseCase, printUC *printing.PrintUseCase, log *logger.Logger) *BadgeTemplateHandler {
	return &BadgeTemplateHandler{uc: uc, printUC: printUC, log: log}
}

// Upsert godoc
// @Summary      Guardar template (crea o sobrescribe el slot)
// @Description  Clave natural (company_id, slot_number). slot_number entre 1 y 3.
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertBadgeTemplateRequest  true  "Template"
// @Success      200   {object}  dto.BadgeTemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/templates [post]
func (h *BadgeTemplateHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertBadgeTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if !canWriteCompany(c, in.CompanyID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no corresponde a la empresa"})
	}
	out, err := h.uc.Upsert(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar templates de una empresa
// @Tags         templates
// @Produce      json
// @Param        companyId  path  string  true  "CNPJ de la empresa"
// @Success      200  {array}   dto.BadgeTemplateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/templates/{companyId} [get]
func (h *BadgeTemplateHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), companyParam(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetBySlot godoc
// @Summary      Obtener template por empresa y slot
// @Tags         templates
// @Produce      json
// @Param        companyId  path  string  true  "CNPJ de la empresa"
// @Param        slot       path  int     true  "Slot (1..3)"
// @Success      200  {object}  dto.BadgeTemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{companyId}/{slot} [get]
func (h *BadgeTemplateHandler) GetBySlot(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return badRequest(c, "INVALID_SLOT", "slot debe ser numérico")
	}
	out, err := h.uc.GetBySlot(c.UserContext(), companyParam(c), slot)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "template no encontrado")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener template por ID
// @Tags         templates
// @Produce      json
// @Param        id   path  int  true  "ID del template"
// @Success      200  {object}  dto.BadgeTemplateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/byId/{id} [get]
func (h *BadgeTemplateHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser numérico")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "template no encontrado")
	}
	return c.JSON(out)
}

// Print godoc
// @Summary      Hoja imprimible (PDF) del template
// @Description  Con employee_id los tags dinámicos del layout (nome, matricula, cpf, ...) se resuelven con los datos del funcionario.
// @Tags         templates
// @Produce      application/pdf
// @Param        companyId    path   string  true   "CNPJ de la empresa"
// @Param        slot         path   int     true   "Slot (1..3)"
// @Param        employee_id  query  int     false  "ID del funcionario"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{companyId}/{slot}/print [get]
func (h *BadgeTemplateHandler) Print(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return badRequest(c, "INVALID_SLOT", "slot debe ser numérico")
	}
	var employeeID *int64
	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(c, "INVALID_EMPLOYEE_ID", "employee_id debe ser numérico")
		}
		employeeID = &id
	}

	pdfBytes, filename, err := h.printUC.Print(c.UserContext(), companyParam(c), slot, employeeID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// companyParam devuelve :companyId decodificado. El router trabaja sobre la ruta cruda,
// así un CNPJ formateado ("12.345.678%2F0001-95") ocupa un solo segmento.
func companyParam(c *fiber.Ctx) string {
	raw := c.Params("companyId")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
