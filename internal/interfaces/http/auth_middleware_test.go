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

	apphttp "github.com/tuo-utente/gestione-ordini/internal/interfaces/http"
	pkgjwt "github.com/tuo-utente/gestione-ordini/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers di test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gestione-ordini-test"
)

// buildTestApp costruisce un'app Fiber minima con:
//   - AuthMiddleware che legge il cookie di sessione e carica i locals
//   - RequireRole per autorizzare l'accesso
//   - un handler che risponde 200 se supera i middleware
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protetta",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"ruolo": apphttp.GetRuolo(c),
			})
		},
	)
	return app
}

// tokenForRole genera un token di sessione con il ruolo indicato.
func tokenForRole(t *testing.T, ruolo string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, pkgjwt.Identity{
		UserID:   1,
		Username: "alice",
		Ruolo:    ruolo,
	})
	require.NoError(t, err, "deve generarsi un token valido")
	return tok
}

// doRequest lancia una GET /protetta con l'eventuale cookie di sessione.
func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protetta", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: l'utente ha il ruolo richiesto → passa (HTTP 200).
func TestRequireRole_AdminAccedeRottaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin deve poter accedere a una rotta riservata ad admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["ruolo"])
}

// Caso 1b: uno dei ruoli consentiti (multi-ruolo) → HTTP 200.
func TestRequireRole_OperatoreAccedeRottaMultiRuolo(t *testing.T) {
	app := buildTestApp("admin", "operatore")
	resp := doRequest(t, app, tokenForRole(t, "operatore"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: ruolo diverso da quello richiesto → HTTP 403 Forbidden.
func TestRequireRole_OperatoreBloccatoSuRottaAdmin(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "operatore"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"operatore non deve accedere a una rotta riservata ad admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: token senza claim di ruolo (sessione legacy) → HTTP 401.
func TestRequireRole_TokenSenzaRuolo_Ritorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// Caso 4: nessun cookie di sessione → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SenzaCookie_Ritorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token invalido o manomesso → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Ritorna401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "token.invalido.qui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: estrazione dei claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_EstraeIdentita(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":       apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"ruolo":    apphttp.GetRuolo(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenForRole(t, "admin")})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "admin", body["ruolo"])
}
