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

	apphttp "github.com/akashtandel42/Salesmanagement/internal/interfaces/http"
	pkgjwt "github.com/akashtandel42/Salesmanagement/pkg/jwt"
)

// buildMiddlewareApp aplicación mínima con AuthMiddleware y un handler que expone los locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testTokenCfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
		})
	})
	return app
}

func requestMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testTokenCfg, 42, "alice")
	require.NoError(t, err)

	resp := requestMe(t, buildMiddlewareApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "42", body["user_id"])
	assert.Equal(t, "alice", body["username"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := requestMe(t, buildMiddlewareApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := requestMe(t, buildMiddlewareApp(), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := requestMe(t, buildMiddlewareApp(), "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	cfg := testTokenCfg
	cfg.ExpMinutes = -1
	tok, _, err := pkgjwt.Generate(cfg, 1, "alice")
	require.NoError(t, err)

	resp := requestMe(t, buildMiddlewareApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_OtraAudiencia_Retorna401(t *testing.T) {
	cfg := testTokenCfg
	cfg.Audience = "otra-api"
	tok, _, err := pkgjwt.Generate(cfg, 1, "alice")
	require.NoError(t, err)

	resp := requestMe(t, buildMiddlewareApp(), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
