package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TemplateUC *usecase.BadgeTemplateUseCase
	EmployeeUC *usecase.EmployeeUseCase
	PrintUC    *printing.PrintUseCase
	Logger     *logger.Logger
	AppName    string
	JWTSecret  string // vacío = escrituras sin autenticación
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Templates
	templates := api.Group("/templates")
	templateHandler := NewBadgeTemplateHandler(deps.TemplateUC, deps.PrintUC, log)
	if deps.JWTSecret != "" {
		templates.Post("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer), templateHandler.Upsert)
	} else {
		templates.Post("/", templateHandler.Upsert)
	}
	// byId antes de /:companyId/:slot: Fiber resuelve en orden de registro.
	templates.Get("/byId/:id", templateHandler.GetByID)
	templates.Get("/:companyId/:slot/print", templateHandler.Print)
	templates.Get("/:companyId/:slot", templateHandler.GetBySlot)
	templates.Get("/:companyId", templateHandler.ListByCompany)

	// Employees (solo lectura)
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	employees.Get("/", employeeHandler.List)
	employees.Get("/companies", employeeHandler.Companies)
	employees.Get("/export", employeeHandler.Export)
}
