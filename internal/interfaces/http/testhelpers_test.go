package http_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/internal/domain/entity"
	"github.com/canvacrancha/badge-api/internal/infrastructure/migrations"
	infrapdf "github.com/canvacrancha/badge-api/internal/infrastructure/pdf"
	"github.com/canvacrancha/badge-api/internal/infrastructure/sqlite"
	infraxlsx "github.com/canvacrancha/badge-api/internal/infrastructure/xlsx"
	apphttp "github.com/canvacrancha/badge-api/internal/interfaces/http"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "badge-api-test"
	testCompanyID = "12345678000199"
)

type testEnv struct {
	app *fiber.App
	db  *sql.DB
}

// newTestEnv construye la app completa sobre SQLite en un directorio temporal.
func newTestEnv(t *testing.T, jwtSecret string) *testEnv {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "badge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.UpSQLite(db, logger.Nop()))

	templateRepo := sqlite.NewBadgeTemplateRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		TemplateUC: usecase.NewBadgeTemplateUseCase(templateRepo),
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, infraxlsx.NewEmployeeExporter()),
		PrintUC:    printing.NewPrintUseCase(templateRepo, employeeRepo, infrapdf.NewMarotoBadgeGenerator()),
		Logger:     logger.Nop(),
		AppName:    "badge-api-test",
		JWTSecret:  jwtSecret,
		JWTIssuer:  testIssuer,
	})
	return &testEnv{app: app, db: db}
}

func (e *testEnv) seedEmployee(t *testing.T, emp *entity.Employee) int64 {
	t.Helper()
	require.NoError(t, sqlite.NewEmployeeRepository(e.db).Create(context.Background(), emp))
	return emp.ID
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) doRaw(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
