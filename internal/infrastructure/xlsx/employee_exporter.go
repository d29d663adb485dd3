// Package xlsx exporta listados a planillas Excel con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

const sheetName = "Funcionarios"

var employeeHeaders = []string{"ID", "Nome", "Matrícula", "Empresa", "Admissão", "Tipo sanguíneo", "CPF", "RG"}

var _ usecase.EmployeeSpreadsheetExporter = (*EmployeeExporter)(nil)

// EmployeeExporter implementa usecase.EmployeeSpreadsheetExporter.
// Fila 1: título; fila 2: encabezados; desde la fila 3: un funcionario por fila.
type EmployeeExporter struct{}

// NewEmployeeExporter construye el exportador.
func NewEmployeeExporter() *EmployeeExporter { return &EmployeeExporter{} }

// ExportEmployees genera el libro y devuelve sus bytes.
func (x *EmployeeExporter) ExportEmployees(_ context.Context, title string, employees []*entity.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja inicial: %w", err)
	}

	if err := writeHeader(f, title); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	// datos
	for i, e := range employees {
		row := i + 3
		admission := ""
		if e.AdmissionDate != nil {
			admission = e.AdmissionDate.Format("02/01/2006")
		}
		values := []any{e.ID, e.Name, e.RegistrationNumber, e.CompanyName, admission, e.BloodType, e.CPF, e.RG}
		start, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", row, err)
		}
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return nil, fmt.Errorf("xlsx: escribir fila %d: %w", row, err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHeader: anchos de columna, título combinado en la fila 1 y encabezados en la fila 2.
func writeHeader(f *excelize.File, title string) error {
	widths := []float64{8, 32, 14, 28, 12, 14, 16, 14}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, w); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		return err
	}

	lastTitle, err := excelize.CoordinatesToCellName(len(employeeHeaders), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, "A1", lastTitle); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return err
	}

	for i, h := range employeeHeaders {
		name, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, name, h); err != nil {
			return err
		}
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(employeeHeaders), 2)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A2", lastHeader, headerStyle)
}
