package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopack/ecopack-api/internal/domain/policy"
	apphttp "github.com/ecopack/ecopack-api/internal/interfaces/http"
	pkgjwt "github.com/ecopack/ecopack-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "ecopack-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireCapability para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(cap policy.Capability) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + capability
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireCapability(cap),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y flag de superusuario indicados.
func tokenFor(t *testing.T, role string, superuser bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, superuser, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireCapability
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin accede a la vista de usuarios → HTTP 200.
func TestRequireCapability_AdminAccedeListaUsuarios(t *testing.T) {
	app := buildTestApp(policy.CapViewUserList)
	resp := doRequest(t, app, tokenFor(t, "admin", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a la lista de usuarios")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["role"], "el role debe ser admin")
}

// Caso 2: staff bloqueado en vistas administrativas → HTTP 403 con mensaje visible.
func TestRequireCapability_StaffBloqueado(t *testing.T) {
	for _, cap := range []policy.Capability{policy.CapViewUserList, policy.CapViewFeedbackLog} {
		app := buildTestApp(cap)
		resp := doRequest(t, app, tokenFor(t, "staff", false))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"staff no debe poder acceder a %s", cap)

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Contains(t, string(body), "FORBIDDEN",
			"la respuesta de error debe incluir el código FORBIDDEN")
		assert.Contains(t, string(body), "solo para administradores",
			"el mensaje de denegación debe ser visible para el usuario")
	}
}

// Caso 2b: manager tampoco accede; las vistas admin son solo para admin/superuser.
func TestRequireCapability_ManagerBloqueado(t *testing.T) {
	app := buildTestApp(policy.CapViewFeedbackLog)
	resp := doRequest(t, app, tokenFor(t, "manager", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: superuser accede aunque su rol sea staff → HTTP 200.
func TestRequireCapability_SuperuserConRolStaff(t *testing.T) {
	app := buildTestApp(policy.CapViewUserList)
	resp := doRequest(t, app, tokenFor(t, "staff", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el flag de superusuario concede acceso con cualquier rol")
}

// Caso 4: token con rol vacío → HTTP 401 MISSING_ROLE.
func TestRequireCapability_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(policy.CapViewUserList)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", false, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 5: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireCapability_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(policy.CapViewUserList)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireCapability_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(policy.CapViewUserList)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"role":      apphttp.GetRole(c),
			"superuser": apphttp.IsSuperuser(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "manager", true))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "manager", body["role"])
	assert.Equal(t, true, body["superuser"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", false, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, superuser, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "admin", role)
	assert.False(t, superuser)
}

func TestJWT_Parse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", false, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret debe rechazarse")
}

func TestJWT_Parse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", false, testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "un token expirado debe rechazarse")
}
