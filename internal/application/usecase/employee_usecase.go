package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
)

// EmployeeSpreadsheetExporter genera la planilla de funcionarios (puerto hacia infraestructura).
type EmployeeSpreadsheetExporter interface {
	ExportEmployees(ctx context.Context, title string, employees []*entity.Employee) ([]byte, error)
}

// EmployeeUseCase consultas sobre funcionarios.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	exporter EmployeeSpreadsheetExporter
}

// NewEmployeeUseCase construye el caso de uso. exporter puede ser nil si no se exporta.
func NewEmployeeUseCase(repo repository.EmployeeRepository, exporter EmployeeSpreadsheetExporter) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, exporter: exporter}
}

// List lista funcionarios, filtrando por nombre de empresa si company no está vacío.
func (uc *EmployeeUseCase) List(ctx context.Context, company string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(company))
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmployeeResponse(e))
	}
	return items, nil
}

// ListCompanies devuelve los nombres de empresa distintos.
func (uc *EmployeeUseCase) ListCompanies(ctx context.Context) ([]string, error) {
	names, err := uc.repo.ListCompanyNames(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Export genera la planilla XLSX de los funcionarios (filtrados por empresa si aplica).
// Devuelve los bytes y el nombre sugerido del archivo.
func (uc *EmployeeUseCase) Export(ctx context.Context, company string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("export: exportador no configurado")
	}
	company = strings.TrimSpace(company)
	list, err := uc.repo.List(ctx, company)
	if err != nil {
		return nil, "", err
	}
	title := "Funcionários"
	filename := "funcionarios.xlsx"
	if company != "" {
		title = "Funcionários - " + company
		filename = "funcionarios_" + slug(company) + ".xlsx"
	}
	data, err := uc.exporter.ExportEmployees(ctx, title, list)
	if err != nil {
		return nil, "", fmt.Errorf("export: %w", err)
	}
	return data, filename, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	out := dto.EmployeeResponse{
		ID:                 e.ID,
		Name:               e.Name,
		RegistrationNumber: e.RegistrationNumber,
		Photo:              e.Photo,
		CompanyName:        e.CompanyName,
		BloodType:          e.BloodType,
		CPF:                e.CPF,
		RG:                 e.RG,
	}
	if e.AdmissionDate != nil {
		out.AdmissionDate = e.AdmissionDate.Format(time.DateOnly)
	}
	return out
}

// slug deja solo letras/dígitos ASCII y guiones bajos para nombres de archivo.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "empresa"
	}
	return b.String()
}
