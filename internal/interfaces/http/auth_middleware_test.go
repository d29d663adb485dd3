package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	apphttp "github.com/canvacrancha/badge-api/internal/interfaces/http"
	pkgjwt "github.com/canvacrancha/badge-api/pkg/jwt"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

func bearer(t *testing.T, companyID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, "rh@empresa", companyID, testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"subject":    apphttp.GetSubject(c),
			"company_id": apphttp.GetCompanyID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, testCompanyID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "rh@empresa", body["subject"])
	assert.Equal(t, testCompanyID, body["company_id"])
}

func TestUpsert_ConJWT(t *testing.T) {
	env := newTestEnv(t, testJWTSecret)
	body := upsertBody(testCompanyID, 1, "Front Gate")

	cases := []struct {
		name   string
		auth   string
		status int
		code   string
	}{
		{"sin header", "", http.StatusUnauthorized, "MISSING_TOKEN"},
		{"formato inválido", "Token abc", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", http.StatusUnauthorized, "INVALID_TOKEN"},
		{"otra empresa", bearer(t, "11222333000181"), http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var headers []string
			if tc.auth != "" {
				headers = []string{"Authorization", tc.auth}
			}
			resp := env.do(t, http.MethodPost, "/api/templates", body, headers...)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	resp := env.do(t, http.MethodPost, "/api/templates", body, "Authorization", bearer(t, testCompanyID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// las lecturas no requieren token
	resp = env.do(t, http.MethodGet, "/api/templates/"+testCompanyID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	env := newTestEnv(t, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, "rh", testCompanyID, testIssuer, -time.Minute)
	require.NoError(t, err)

	resp := env.do(t, http.MethodPost, "/api/templates", upsertBody(testCompanyID, 1, "x"), "Authorization", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequestLogger_RegistraSujetoDelToken(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.New(logger.Config{Env: "test", Output: &buf})))
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, testIssuer), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, testCompanyID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "rh@empresa", entry["subject"])
	assert.Equal(t, "/me", entry["path"])
}
