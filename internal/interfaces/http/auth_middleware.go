package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/canvacrancha/badge-api/internal/application/dto"
	"github.com/canvacrancha/badge-api/pkg/jwt"
)

// Locals keys para el sujeto y la empresa del token en Fiber.
const (
	LocalSubject   = "subject"
	LocalCompanyID = "company_id"
)

// AuthMiddleware valida el Bearer Token JWT y extrae Subject y CompanyID a c.Locals.
func AuthMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.CompanyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "el token no incluye company_id"})
		}
		c.Locals(LocalSubject, claims.Subject)
		c.Locals(LocalCompanyID, claims.CompanyID)
		return c.Next()
	}
}

// GetSubject devuelve el sujeto del token (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSubject).(string)
	return s
}

// GetCompanyID devuelve el CompanyID del token (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalCompanyID).(string)
	return s
}

// canWriteCompany informa si la petición puede escribir en companyID.
// Sin middleware de auth (JWT deshabilitado) no hay empresa en el contexto y se permite.
func canWriteCompany(c *fiber.Ctx, companyID string) bool {
	tokenCompany := GetCompanyID(c)
	if tokenCompany == "" {
		return true
	}
	return tokenCompany == strings.TrimSpace(companyID)
}
