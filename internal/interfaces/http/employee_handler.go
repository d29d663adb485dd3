package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmployeeHandler maneja las peticiones HTTP de funcionarios (solo lectura).
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar funcionarios
// @Tags         employees
// @Produce      json
// @Param        company  query  string  false  "Nombre de la empresa"
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("company"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Companies godoc
// @Summary      Nombres de empresa distintos
// @Tags         employees
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees/companies [get]
func (h *EmployeeHandler) Companies(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar funcionarios a Excel
// @Tags         employees
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        company  query  string  false  "Nombre de la empresa"
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/employees/export [get]
func (h *EmployeeHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.uc.Export(c.UserContext(), c.Query("company"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
