package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muebleria/muebleria-api/internal/application/auth"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	apphttp "github.com/muebleria/muebleria-api/internal/interfaces/http"
	pkgjwt "github.com/muebleria/muebleria-api/pkg/jwt"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "muebleria-test"
	testExpMin    = 60
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	u, _ := r.GetByUsername(username)
	return u != nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) UpdateProfile(*entity.UserProfile) error { return nil }
func (r *fakeUserRepo) UpdateDriverDetail(*entity.DriverDetail) error { return nil }

func (r *fakeUserRepo) List(repository.UserFilter, int, int) ([]*entity.User, error) {
	return nil, nil
}

// testUser usuario VENDEDOR con horario de lunes laboral en CDMX.
func testUser() *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &entity.User{
		ID:           testUserID,
		Username:     "vendedor1",
		PasswordHash: string(hash),
		Role:         entity.RoleVendedor,
		Active:       true,
		AccessRules: []entity.AccessRule{{
			ID: "rule-1", UserID: testUserID, DayOfWeek: "MONDAY",
			StartTime: entity.ClockTime(8 * 3600), EndTime: entity.ClockTime(17 * 3600),
			Timezone: "America/Mexico_City", Active: true,
		}},
	}
}

// inCDMX instante fijo de lunes (2026-03-02) en CDMX.
func inCDMX(t *testing.T, hhmmss string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", "2026-03-02 "+hhmmss, loc)
	require.NoError(t, err)
	return ts
}

func newAuthUC(repo repository.UserRepository, now time.Time) *auth.UseCase {
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return auth.NewUseCase(repo, log, testJWTSecret, testIssuer, testExpMin).
		WithClock(func() time.Time { return now })
}

// buildTestApp app Fiber mínima con AuthMiddleware (y opcionalmente RequireRole)
// delante de un handler que devuelve el rol cargado.
func buildTestApp(authUC *auth.UseCase, allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(authUC, nil)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":       true,
			"role":     apphttp.GetRole(c),
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Username, string(u.Role), testIssuer, testExpMin)
	require.NoError(t, err)
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
// Gate por petición: horario y frescura de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_DentroDeHorario_CargaLocals(t *testing.T) {
	u := testUser()
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "10:00:00")))

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VENDEDOR", body["role"])
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "vendedor1", body["username"])
}

func TestAuthMiddleware_FueraDeHorario_Retorna403AccesoDenegado(t *testing.T) {
	// Token válido y firmado, pero son las 20:00 de un lunes (regla hasta 17:00):
	// el gate debe denegar aunque la sesión sea legítima.
	u := testUser()
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "20:00:00")))

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Acceso Denegado")
	assert.Contains(t, string(body), "fuera de tu horario")
}

func TestAuthMiddleware_SinReglasNiBypass_Retorna403(t *testing.T) {
	u := testUser()
	u.AccessRules = nil
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "10:00:00")))

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "no tienes un horario")
}

func TestAuthMiddleware_TokenAnteriorAlCambioDePassword_Retorna401(t *testing.T) {
	u := testUser()
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "10:00:00")))

	tok := tokenFor(t, u)
	changed := time.Now().Add(time.Hour)
	u.PasswordChangedAt = &changed

	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "STALE_TOKEN")
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newAuthUC(newFakeUserRepo(), inCDMX(t, "10:00:00")))

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newAuthUC(newFakeUserRepo(), inCDMX(t, "10:00:00")))

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	u := testUser()
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "10:00:00")),
		entity.RoleAdmin, entity.RoleVendedor)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"VENDEDOR debe poder acceder a ruta que permite ADMIN o VENDEDOR")
}

func TestRequireRole_RolNoPermitidoRetorna403(t *testing.T) {
	u := testUser()
	app := buildTestApp(newAuthUC(newFakeUserRepo(u), inCDMX(t, "10:00:00")),
		entity.RoleAdmin)

	resp := doRequest(t, app, tokenFor(t, u))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}
