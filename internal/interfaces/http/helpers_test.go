package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akashtandel42/Salesmanagement/internal/application/auth"
	"github.com/akashtandel42/Salesmanagement/internal/application/usecase"
	"github.com/akashtandel42/Salesmanagement/internal/infrastructure/memory"
	apphttp "github.com/akashtandel42/Salesmanagement/internal/interfaces/http"
	"github.com/akashtandel42/Salesmanagement/pkg/jwt"
	"github.com/akashtandel42/Salesmanagement/pkg/logger"
)

var testTokenCfg = jwt.TokenConfig{
	Secret:     "test-secret-key-for-unit-tests",
	Issuer:     "salesmanagement-test",
	Audience:   "salesmanagement-clients",
	ExpMinutes: 30,
}

// testEnv app completa sobre stores en memoria.
type testEnv struct {
	app      *fiber.App
	products *memory.ProductRepo
	sales    *memory.SaleRepo
}

// newTestEnv arma el router con analytics opcionalmente reemplazado por un stub.
func newTestEnv(t *testing.T, analytics usecase.AnalyticsService) *testEnv {
	t.Helper()
	products := memory.NewProductRepository()
	sales := memory.NewSaleRepository()
	users := memory.NewUserRepository()
	if analytics == nil {
		analytics = usecase.NewAnalyticsUseCase(sales, usecase.WithProductLookup(products))
	}

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	app.Get("/health", apphttp.Health("salesmanagement", "memory"))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(products),
		SaleUC:      usecase.NewSaleUseCase(sales),
		AnalyticsUC: analytics,
		AuthUC:      auth.NewAuthUseCase(users, testTokenCfg).WithBcryptCost(bcrypt.MinCost),
		TokenConfig: testTokenCfg,
	})
	return &testEnv{app: app, products: products, sales: sales}
}

// bearer genera un token válido para las rutas protegidas.
func bearer(t *testing.T) string {
	t.Helper()
	tok, _, err := jwt.Generate(testTokenCfg, 1, "tester")
	require.NoError(t, err)
	return "Bearer " + tok
}

// do lanza la petición; body se serializa como JSON si no es nil.
func (e *testEnv) do(t *testing.T, method, path, auth string, body any) *http.Response {
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
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
