package http_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-micro/internal/application/auth"
	"github.com/tu-usuario/inventory-micro/internal/domain"
	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
	apphttp "github.com/tu-usuario/inventory-micro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el servicio de identidad
// ──────────────────────────────────────────────────────────────────────────────

type memAuthStore struct {
	companies map[string]*entity.Company
	users     map[string]*entity.User
}

func newMemAuthStore() *memAuthStore {
	return &memAuthStore{
		companies: make(map[string]*entity.Company),
		users:     make(map[string]*entity.User),
	}
}

type memCompanyRepo struct{ s *memAuthStore }

func (r *memCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	r.s.companies[c.ID] = &cp
	return nil
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type memUserRepo struct{ s *memAuthStore }

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type memRegisterTxRunner struct{ s *memAuthStore }

func (tx *memRegisterTxRunner) RunRegistration(_ context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	return fn(&memCompanyRepo{s: tx.s}, &memUserRepo{s: tx.s})
}

// buildAuthApp levanta el servicio de identidad con repos en memoria.
func buildAuthApp() *fiber.App {
	store := newMemAuthStore()
	uc := auth.NewAuthUseCase(
		&memUserRepo{s: store},
		&memRegisterTxRunner{s: store},
		auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
	)
	app := fiber.New()
	apphttp.SetupAuthRoutes(app, apphttp.AuthRouterDeps{AuthUseCase: uc})
	return app
}

func registerPayload() fiber.Map {
	return fiber.Map{
		"name":        "Ana Gómez",
		"email":       "ana@acme.test",
		"password":    "super-secreto-123",
		"companyName": "ACME Ltda",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — /api/auth/register
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRoutes_RegisterExitoso(t *testing.T) {
	app := buildAuthApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Account created successfully", body["message"])
	user := body["user"].(map[string]any)
	company := body["company"].(map[string]any)
	assert.Equal(t, "ana@acme.test", user["email"])
	assert.Equal(t, "admin", user["role"], "el primer usuario es admin")
	assert.Equal(t, company["id"], user["company_id"])
	assert.NotContains(t, user, "password_hash", "el hash nunca sale en la respuesta")
}

func TestAuthRoutes_RegisterEmailDuplicado_Retorna409(t *testing.T) {
	app := buildAuthApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerPayload())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

func TestAuthRoutes_RegisterCamposFaltantes_Retorna400(t *testing.T) {
	app := buildAuthApp()

	payload := registerPayload()
	delete(payload, "companyName")
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestAuthRoutes_RegisterPasswordCorto_Retorna400(t *testing.T) {
	app := buildAuthApp()

	payload := registerPayload()
	payload["password"] = "corto"
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — /api/auth/login
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthRoutes_LoginExitoso_DevuelveBearer(t *testing.T) {
	app := buildAuthApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@acme.test", "password": "super-secreto-123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["access_token"].(string)
	assert.True(t, strings.HasPrefix(token, "Bearer "), "el token sale con prefijo Bearer")
}

func TestAuthRoutes_LoginPasswordIncorrecto_Retorna401(t *testing.T) {
	app := buildAuthApp()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerPayload())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@acme.test", "password": "incorrecto",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestAuthRoutes_LoginEmailDesconocido_MismaRespuesta(t *testing.T) {
	app := buildAuthApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "nadie@acme.test", "password": "loquesea",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestAuthRoutes_LoginSinCampos_Retorna400(t *testing.T) {
	app := buildAuthApp()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}
