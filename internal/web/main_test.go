package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
	"github.com/barbersite/barbersite/internal/web/handler"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	return newTestServiceIn(t, document.FileBackend{Dir: t.TempDir()})
}

func newTestServiceIn(t *testing.T, backend document.FileBackend) *Service {
	t.Helper()

	cfg := &config.Config{
		Title:       "Houston Barbers - Premium Barbershop in Houston, TX",
		Description: "Premier barbershop in Houston, TX.",
		Webserver:   config.Webserver{Port: 8080, URL: "http://localhost:8080"},
	}

	return New(cfg, &handler.Deps{
		Settings: settings.New(settings.NewStore(backend)),
		Gallery:  gallery.New(gallery.NewStore(backend)),
	})
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewPanicsWithoutArgs(t *testing.T) {
	assert.Panics(t, func() { New(nil, &handler.Deps{}) })
	assert.Panics(t, func() { New(&config.Config{}, nil) })
}

func TestAddr(t *testing.T) {
	s := newTestService(t)
	assert.Equal(t, ":8080", s.Addr())
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	status, body := get(t, s.App, CheckAlivePath)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", body)

	s.alive.Store(false)

	status, _ = get(t, s.App, CheckAlivePath)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestMetrics(t *testing.T) {
	s := newTestService(t)

	status, body := get(t, s.App, MetricsPath)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "go_goroutines")
}

func TestStatic(t *testing.T) {
	s := newTestService(t)

	status, body := get(t, s.App, StaticPath+"/css/site.css")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "--color-primary")
}

func TestLandingPage(t *testing.T) {
	s := newTestService(t)

	status, body := get(t, s.App, "/")
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, body, "<title>Houston Barbers - Premium Barbershop in Houston, TX</title>")
	assert.Contains(t, body, "--color-primary: #1a1a1a;")
	assert.Contains(t, body, "Beard Trim &amp; Shave")
	assert.Contains(t, body, `href="#gallery"`)
	assert.Contains(t, body, `href="/dashboard"`)
	assert.Contains(t, body, "123 Main Street, Houston, TX 77002")
}

func TestDashboardPage(t *testing.T) {
	s := newTestService(t)

	for _, tab := range []string{"settings", "gallery", "theme"} {
		status, body := get(t, s.App, "/dashboard?tab="+tab)
		require.Equal(t, http.StatusOK, status, tab)
		assert.Contains(t, body, `action="/dashboard/`+tab+`"`, tab)
	}
}

func TestAPIRoutes(t *testing.T) {
	s := newTestService(t)

	status, body := get(t, s.App, "/api/settings")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"businessName":"Houston Barbers"`)

	status, body = get(t, s.App, "/api/gallery")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"createdAt"`)
}

func TestServicesKeepOwnData(t *testing.T) {
	austin := document.FileBackend{Dir: t.TempDir()}
	require.NoError(t, os.WriteFile(austin.Path(settings.DocumentName),
		[]byte(`{"businessName":"Austin Barbers"}`), 0o600))

	first := newTestServiceIn(t, austin)
	second := newTestService(t)

	status, body := get(t, first.App, "/api/settings")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"businessName":"Austin Barbers"}`, body)

	status, body = get(t, second.App, "/api/settings")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"businessName":"Houston Barbers"`)

	_, body = get(t, first.App, "/")
	assert.Contains(t, body, "<h1>Austin Barbers</h1>")
}

func TestShutdownFailsCheckAlive(t *testing.T) {
	s := newTestService(t)
	s.fastShutDown = true

	s.Shutdown()

	assert.False(t, s.alive.Load())
}
