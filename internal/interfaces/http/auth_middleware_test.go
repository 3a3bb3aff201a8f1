package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba-no-usar-en-produccion"

// buildTestApp arma una app mínima con el middleware de auth y una ruta
// restringida a personal de plataforma. El handler devuelve el actor para
// poder verificar qué llegó desde el token.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", AuthMiddleware(testSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		actor := GetActor(c)
		return c.JSON(fiber.Map{
			"user_id":     actor.UserID,
			"platform_id": actor.PlatformID,
			"company_id":  actor.CompanyID,
			"role":        actor.Role,
		})
	})
	protected.Get("/solo-staff", RequireRole(entity.RoleAdmin, entity.RoleStaff), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, role, companyID string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, jwt.AuthContext{
		UserID:     "user-1",
		PlatformID: "plat-1",
		CompanyID:  companyID,
		Role:       role,
	}, "test", 60)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, bearer string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp()
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", ""))
}

func TestAuthMiddleware_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleAdmin, "")

	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", token),
		"token sin prefijo Bearer debe rechazarse")
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "Basic "+token))
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "Bearer "))
}

func TestAuthMiddleware_FirmaIncorrectaRetorna401(t *testing.T) {
	app := buildTestApp()
	otro, err := jwt.Generate("otro-secreto", jwt.AuthContext{UserID: "user-1", Role: entity.RoleAdmin}, "test", 60)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "Bearer "+otro))
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	app := buildTestApp()
	expired, err := jwt.Generate(testSecret, jwt.AuthContext{UserID: "user-1", Role: entity.RoleAdmin}, "test", -5)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "Bearer "+expired))
}

func TestAuthMiddleware_TokenValidoDejaPasar(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleClient, "co-1")

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/me", "Bearer "+token))
}

func TestRequireRole_RolPermitidoPasa(t *testing.T) {
	app := buildTestApp()
	for _, role := range []string{entity.RoleAdmin, entity.RoleStaff} {
		token := tokenFor(t, role, "")
		assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/solo-staff", "Bearer "+token),
			"el rol %s debe acceder", role)
	}
}

func TestRequireRole_RolSinPermisoRetorna403(t *testing.T) {
	app := buildTestApp()
	for _, role := range []string{entity.RoleClient, entity.RoleLogistics} {
		token := tokenFor(t, role, "co-1")
		assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/solo-staff", "Bearer "+token),
			"el rol %s no debe acceder", role)
	}
}

// TestGetActor_SinContextoDevuelveActorVacio cubre el caso de un handler mal
// registrado fuera del middleware: el actor vacío no autoriza nada.
func TestGetActor_SinContextoDevuelveActorVacio(t *testing.T) {
	app := fiber.New()
	app.Get("/suelto", func(c *fiber.Ctx) error {
		actor := GetActor(c)
		assert.Empty(t, actor.UserID)
		assert.Empty(t, actor.Role)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/suelto", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
}
