package printing

import (
	"context"
	"fmt"
	"strings"

	"github.com/canvacrancha/badge-api/internal/domain"
	"github.com/canvacrancha/badge-api/internal/domain/badge"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

// PrintUseCase genera la hoja imprimible (PDF) de un template, opcionalmente
// personalizada con los datos de un funcionario.
type PrintUseCase struct {
	templateRepo repository.BadgeTemplateRepository
	employeeRepo repository.EmployeeRepository
	generator    BadgePDFGenerator
}

// NewPrintUseCase construye el caso de uso inyectando sus dependencias.
func NewPrintUseCase(
	templateRepo repository.BadgeTemplateRepository,
	employeeRepo repository.EmployeeRepository,
	generator BadgePDFGenerator,
) *PrintUseCase {
	return &PrintUseCase{
		templateRepo: templateRepo,
		employeeRepo: employeeRepo,
		generator:    generator,
	}
}

// Print genera el PDF del template (companyID, slot).
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el template o el funcionario no existen.
//   - domain.ErrInvalidInput     si el layout guardado no se puede interpretar.
func (uc *PrintUseCase) Print(ctx context.Context, companyID string, slot int, employeeID *int64) ([]byte, string, error) {
	companyID = strings.TrimSpace(companyID)
	if slot < domain.MinSlot || slot > domain.MaxSlot {
		return nil, "", domain.ErrNotFound
	}

	tpl, err := uc.templateRepo.FindByKey(ctx, companyID, slot)
	if err != nil {
		return nil, "", fmt.Errorf("print: obtener template: %w", err)
	}
	if tpl == nil {
		return nil, "", domain.ErrNotFound
	}

	var employee *entity.Employee
	if employeeID != nil {
		employee, err = uc.employeeRepo.GetByID(ctx, *employeeID)
		if err != nil {
			return nil, "", fmt.Errorf("print: obtener funcionario: %w", err)
		}
		if employee == nil {
			return nil, "", domain.ErrNotFound
		}
	}

	sheet, err := BuildSheet(tpl, employee)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err := uc.generator.GenerateBadgePDF(ctx, sheet)
	if err != nil {
		return nil, "", fmt.Errorf("print: generación fallida: %w", err)
	}

	filename := fmt.Sprintf("cracha_%s_slot%d.pdf", digitsOr(companyID, "empresa"), slot)
	if employee != nil && employee.RegistrationNumber != "" {
		filename = fmt.Sprintf("cracha_%s_slot%d_%s.pdf", digitsOr(companyID, "empresa"), slot, digitsOr(employee.RegistrationNumber, "func"))
	}
	return pdfBytes, filename, nil
}

// BuildSheet interpreta el layout del template y resuelve los tags dinámicos.
// Sin funcionario los tags se mantienen literales (vista previa).
func BuildSheet(tpl *entity.BadgeTemplate, employee *entity.Employee) (*BadgeSheet, error) {
	layout, err := badge.ParseLayout(tpl.Layout)
	if err != nil {
		return nil, err
	}
	var values badge.TagValues
	if employee != nil {
		values = badge.EmployeeTags(employee)
	}
	return &BadgeSheet{
		Template: tpl,
		Employee: employee,
		Front:    resolveSide(layout.BySide(badge.SideFront), values),
		Back:     resolveSide(layout.BySide(badge.SideBack), values),
	}, nil
}

func resolveSide(elements []badge.Element, values badge.TagValues) []SheetElement {
	out := make([]SheetElement, 0, len(elements))
	for _, el := range elements {
		if el.Type == badge.ElementShape {
			continue
		}
		content := badge.Resolve(el.Content, values)
		// foto sin contenido = foto del funcionario
		if el.Type == badge.ElementPhoto && strings.TrimSpace(el.Content) == "" && values != nil {
			content = values[badge.TagFoto]
		}
		out = append(out, SheetElement{
			Type:     el.Type,
			Content:  content,
			FontSize: el.FontSize,
			Bold:     el.FontWeight == "bold" || el.FontWeight == "700",
			Align:    el.TextAlign,
		})
	}
	return out
}

func digitsOr(s, fallback string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
