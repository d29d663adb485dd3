package xlsx

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

func TestExportEmployees(t *testing.T) {
	adm := time.Date(2020, 2, 3, 0, 0, 0, 0, time.UTC)
	employees := []*entity.Employee{
		{ID: 7, Name: "Ana Souza", RegistrationNumber: "001", CompanyName: "ACME", AdmissionDate: &adm, BloodType: "O+", CPF: "123", RG: "45"},
		{ID: 9, Name: "Bruno Lima", RegistrationNumber: "002", CompanyName: "ACME"},
	}

	out, err := NewEmployeeExporter().ExportEmployees(context.Background(), "Funcionários - ACME", employees)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Funcionários - ACME", rows[0][0])
	assert.Equal(t, employeeHeaders, rows[1])
	assert.Equal(t, []string{"7", "Ana Souza", "001", "ACME", "03/02/2020", "O+", "123", "45"}, rows[2])
	require.GreaterOrEqual(t, len(rows[3]), 2)
	assert.Equal(t, "Bruno Lima", rows[3][1])
}

func TestExportEmployees_Vacio(t *testing.T) {
	out, err := NewEmployeeExporter().ExportEmployees(context.Background(), "Funcionários", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestExportEmployees_TituloCombinadoYEncabezadoConEstilo(t *testing.T) {
	out, err := NewEmployeeExporter().ExportEmployees(context.Background(), "Funcionários", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	merged, err := f.GetMergeCells(sheetName)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "H1", merged[0].GetEndAxis())

	first, err := f.GetCellStyle(sheetName, "A2")
	require.NoError(t, err)
	last, err := f.GetCellStyle(sheetName, "H2")
	require.NoError(t, err)
	assert.NotZero(t, first)
	assert.Equal(t, first, last)

	width, err := f.GetColWidth(sheetName, "B")
	require.NoError(t, err)
	assert.InDelta(t, 32, width, 0.01)
}
