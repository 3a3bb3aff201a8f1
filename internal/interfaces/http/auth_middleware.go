package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
	"github.com/mesharis-cell/platform-api/internal/application/dto"
	"github.com/mesharis-cell/platform-api/pkg/jwt"
)

// Locals key del contexto de autorización en Fiber.
const LocalAuthContext = "auth_context"

// AuthMiddleware valida el Bearer Token JWT y deja el contexto de autorización
// completo (usuario, plataforma, empresa, rol) en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
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
		ac, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAuthContext, ac)
		return c.Next()
	}
}

// RequireRole corta con 403 si el rol autenticado no está en la lista.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetActor devuelve el actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) commercial.Actor {
	v := c.Locals(LocalAuthContext)
	ac, ok := v.(jwt.AuthContext)
	if !ok {
		return commercial.Actor{}
	}
	return commercial.Actor{
		UserID:     ac.UserID,
		PlatformID: ac.PlatformID,
		CompanyID:  ac.CompanyID,
		Role:       ac.Role,
	}
}
