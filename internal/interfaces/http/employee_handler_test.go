package http_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
)

func seedEmployees(t *testing.T, env *testEnv) {
	t.Helper()
	env.seedEmployee(t, &entity.Employee{Name: "Carla", RegistrationNumber: "3", CompanyName: "Globex"})
	env.seedEmployee(t, &entity.Employee{Name: "Bruno", RegistrationNumber: "2", CompanyName: "ACME"})
	env.seedEmployee(t, &entity.Employee{Name: "Ana", RegistrationNumber: "1", CompanyName: "ACME", BloodType: "O+"})
}

func TestEmployees_List(t *testing.T) {
	env := newTestEnv(t, "")
	seedEmployees(t, env)

	resp := env.do(t, http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]dto.EmployeeResponse](t, resp)
	require.Len(t, all, 3)
	assert.Equal(t, "Ana", all[0].Name)

	resp = env.do(t, http.MethodGet, "/api/employees?company=ACME", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	acme := decode[[]dto.EmployeeResponse](t, resp)
	require.Len(t, acme, 2)
	for _, e := range acme {
		assert.Equal(t, "ACME", e.CompanyName)
	}
	assert.Equal(t, "O+", acme[0].BloodType)
}

func TestEmployees_ListVacio(t *testing.T) {
	env := newTestEnv(t, "")

	for _, path := range []string{"/api/employees", "/api/employees/companies"} {
		resp := env.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, "[]", string(raw), path)
	}
}

func TestEmployees_Companies(t *testing.T) {
	env := newTestEnv(t, "")
	seedEmployees(t, env)

	resp := env.do(t, http.MethodGet, "/api/employees/companies", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"ACME", "Globex"}, decode[[]string](t, resp))
}

func TestEmployees_Export(t *testing.T) {
	env := newTestEnv(t, "")
	seedEmployees(t, env)

	resp := env.do(t, http.MethodGet, "/api/employees/export?company=ACME", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "funcionarios_acme.xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 4, "título + encabezado + 2 funcionarios")
	assert.Equal(t, "Ana", rows[2][1])
	assert.Equal(t, "Bruno", rows[3][1])
}
