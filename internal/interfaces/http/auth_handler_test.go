package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
)

func TestAuth_RegistroYLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var user dto.UserResponse
	decode(t, resp, &user)
	assert.Equal(t, "alice", user.Username)

	resp = env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "otra"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "alice", Password: "s3cret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	resp = env.do(t, http.MethodGet, "/api/sales", "Bearer "+login.Token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el token emitido por login abre las rutas protegidas")
}

func TestAuth_LoginInvalido(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice", Password: "s3cret"})
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "alice", Password: "mala"})
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestAuth_CamposFaltantes(t *testing.T) {
	env := newTestEnv(t, nil)
	resp := env.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Username: "alice"})
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "password")

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Password: "x"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
