package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jpcardoso/almoxarifado-api/internal/interfaces/http"
	pkgjwt "github.com/jpcardoso/almoxarifado-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testMatricula = "A12345"
	testIssuer    = "almoxarifado-api-test"
	testExpHours  = 1
)

// buildTestApp constrói uma aplicação Fiber mínima com o AuthMiddleware e um
// handler que devolve a identidade extraída dos locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"matricula": apphttp.GetMatricula(c),
		})
	})
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testMatricula, testIssuer, testExpHours)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

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
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido: deve passar e carregar user_id e matricula nos locals.
func TestAuthMiddleware_TokenValido_ExtraiClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testMatricula, body["matricula"])
}

// Sem header Authorization: HTTP 401 com envelope success=false.
func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"], "erro deve usar o envelope success=false")
	assert.NotEmpty(t, body["message"])
}

// Header sem o prefixo Bearer: HTTP 401.
func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado: HTTP 401.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token assinado com outro secret: HTTP 401.
func TestAuthMiddleware_SecretIncorreto_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-secret-diferente", testUserID, testMatricula, testIssuer, testExpHours)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testMatricula, testIssuer, testExpHours)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, matricula, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testMatricula, matricula)
}

func TestJWT_TokenExpirado_RetornaErro(t *testing.T) {
	// Validade -1 hora (já expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testMatricula, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado deve retornar erro")
}

func TestJWT_SecretVazio_RetornaErro(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testMatricula, testIssuer, testExpHours)
	assert.Error(t, err, "secret vazio não deve emitir token")
}
