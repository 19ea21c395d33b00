package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/api/http/handlers"
	"github.com/NoeTobes/FullStackWebApp/internal/observability"
	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/service"
	"github.com/NoeTobes/FullStackWebApp/internal/session"
	"github.com/NoeTobes/FullStackWebApp/internal/storage"
	"github.com/NoeTobes/FullStackWebApp/internal/store"
	"github.com/NoeTobes/FullStackWebApp/internal/view"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	kv := storage.NewMemory()
	records := store.NewRecords(kv, logger)
	require.NoError(t, records.Load(context.Background()))

	sess := session.New()
	toasts := view.NewToastCenter()
	doc := view.NewDocument()
	htmlRenderer, err := view.NewHTMLRenderer()
	require.NoError(t, err)
	pageRenderer := view.NewPageRenderer(htmlRenderer, doc, sess, records, toasts, logger)

	metrics := observability.NewMetrics()
	router := routing.NewRouter(sess, pageRenderer, toasts, logger, metrics)
	accountService := service.NewAccountService(records, sess, router, logger)
	router.Navigate(routing.PathHome)

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:   handlers.NewHealthHandler("test", "dev", kv),
		Pages:    handlers.NewPagesHandler(router, doc),
		Accounts: handlers.NewAccountsHandler(accountService, router, pageRenderer, toasts),
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *nethttp.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, path, nil))
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestHomePage(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Welcome")
}

func TestUnknownPathShowsHome(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/no-such-page")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Welcome")
}

func TestProtectedPageRedirectsAnonymousToLogin(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/profile")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAdminPageRedirectsAnonymousHome(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/departments")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLoginLogoutFlow(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"Password123!"},
	})
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile", resp.Header.Get("Location"))

	resp = get(t, app, "/employees")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "No employees yet.")

	resp = postForm(t, app, "/logout", url.Values{})
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = get(t, app, "/employees")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLoginFailureRepaintsFormWithToast(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "invalid credentials or unverified account")
	assert.Contains(t, page, `value="admin@example.com"`)
}

func TestRegisterVerifyLoginRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/register", url.Values{
		"firstName": {"Jane"},
		"lastName":  {"Doe"},
		"email":     {"jane@example.com"},
		"password":  {"secret1"},
	})
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/verify-email", resp.Header.Get("Location"))

	resp = get(t, app, "/verify-email")
	assert.Contains(t, body(t, resp), "jane@example.com")

	resp = postForm(t, app, "/verify-email", url.Values{})
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = postForm(t, app, "/login", url.Values{
		"email":    {"jane@example.com"},
		"password": {"secret1"},
	})
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/profile", resp.Header.Get("Location"))

	// A plain user still cannot reach admin pages.
	resp = get(t, app, "/accounts")
	assert.Equal(t, nethttp.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRegisterValidationFailureKeepsForm(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/register", url.Values{
		"firstName": {"Jane"},
		"lastName":  {"Doe"},
		"email":     {"jane@example.com"},
		"password":  {"123"},
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, `value="Jane"`)
	assert.Contains(t, page, `value="jane@example.com"`)
}

func TestRegisterJSONErrorEnvelope(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(nethttp.MethodPost, "/register",
		strings.NewReader(`{"firstName":"","lastName":"","email":"","password":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "VALIDATION_FAILED", payload.Error.Code)
	assert.Contains(t, payload.Error.Details, "email")
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/health/live")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	resp = get(t, app, "/health/ready")
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
