package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/site/settings"
	"github.com/barbersite/barbersite/internal/web/handler"
)

type mockViews struct {
	name string
	data fiber.Map
}

func (*mockViews) Load() error { return nil }

func (v *mockViews) Render(w io.Writer, name string, data any, _ ...string) error {
	v.name = name
	v.data, _ = data.(fiber.Map)
	_, _ = io.WriteString(w, name)

	return nil
}

type testEnv struct {
	app      *fiber.App
	views    *mockViews
	settings *settings.Service
	gallery  *gallery.Service
}

func newTestEnv(t *testing.T, guard fiber.Handler) testEnv {
	t.Helper()

	views := &mockViews{}
	app := fiber.New(fiber.Config{Views: views})

	backend := document.FileBackend{Dir: t.TempDir()}
	env := testEnv{
		app:      app,
		views:    views,
		settings: settings.New(settings.NewStore(backend)),
		gallery:  gallery.New(gallery.NewStore(backend)),
	}

	s := &Service{}
	s.Init(app, &config.Config{Title: "Dashboard test"}, &handler.Deps{
		Settings: env.settings,
		Gallery:  env.gallery,
		Guard:    guard,
	})

	return env
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func TestActiveTab(t *testing.T) {
	tests := map[string]string{
		"":         TabSettings,
		"settings": TabSettings,
		"gallery":  TabGallery,
		"theme":    TabTheme,
		"unknown":  TabSettings,
	}

	for in, want := range tests {
		assert.Equal(t, want, ActiveTab(in), in)
	}
}

func TestGet(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, Path+"?tab=gallery", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, env.views.name)
	assert.Equal(t, TabGallery, env.views.data["ActiveTab"])

	images, ok := env.views.data["Gallery"].([]models.GalleryImage)
	require.True(t, ok)
	assert.Len(t, images, 3)

	page, ok := env.views.data["Page"].(handler.Page)
	require.True(t, ok)
	require.NotNil(t, page.Navigation)
	assert.Len(t, page.Navigation.Tabs, 3)
}

func TestGetIsGuarded(t *testing.T) {
	env := newTestEnv(t, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	})

	resp, err := env.app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, env.views.name)

	resp = postForm(t, env.app, Path+"/theme", url.Values{"primary": {"#000000"}})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPostSettings(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := postForm(t, env.app, Path+"/settings", url.Values{
		"businessName": {"Main Street Cuts"},
		"address":      {"1 Main St"},
		"phone":        {"(555) 010-0000"},
		"email":        {"hi@example.com"},
		"monday":       {"Closed"},
		"sunday":       {"10:00 AM - 2:00 PM"},
		"instagram":    {"https://instagram.com/mainstreetcuts"},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path+"?tab=settings&status=saved", resp.Header.Get(fiber.HeaderLocation))

	site, err := env.settings.Load()
	require.NoError(t, err)
	assert.Equal(t, "Main Street Cuts", site.BusinessName)
	assert.Equal(t, "Closed", site.Hours.Monday)
	assert.Equal(t, "10:00 AM - 2:00 PM", site.Hours.Sunday)
	assert.Empty(t, site.Hours.Tuesday)
	assert.Equal(t, "https://instagram.com/mainstreetcuts", site.SocialMedia.Instagram)
	assert.Equal(t, settings.Default().Theme, site.Theme)
}

func TestPostSettingsInvalid(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := postForm(t, env.app, Path+"/settings", url.Values{
		"businessName": {""},
		"email":        {"not-an-email"},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path+"?tab=settings&status=invalid", resp.Header.Get(fiber.HeaderLocation))

	site, err := env.settings.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.Default().BusinessName, site.BusinessName)
}

func TestPostTheme(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := postForm(t, env.app, Path+"/theme", url.Values{
		"primary":   {"#112233"},
		"secondary": {"#445566"},
		"accent":    {"#778899"},
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path+"?tab=theme&status=saved", resp.Header.Get(fiber.HeaderLocation))

	site, err := env.settings.Load()
	require.NoError(t, err)
	assert.Equal(t, models.Theme{Primary: "#112233", Secondary: "#445566", Accent: "#778899"}, site.Theme)
	assert.Equal(t, settings.Default().BusinessName, site.BusinessName)
}

func TestPostThemeInvalid(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := postForm(t, env.app, Path+"/theme", url.Values{
		"primary":   {"red"},
		"secondary": {"#445566"},
		"accent":    {"#778899"},
	})
	defer resp.Body.Close()

	assert.Equal(t, Path+"?tab=theme&status=invalid", resp.Header.Get(fiber.HeaderLocation))

	site, err := env.settings.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.Default().Theme, site.Theme)
}

func TestPostGallery(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := postForm(t, env.app, Path+"/gallery", url.Values{"url": {"https://example.com/cut.jpg"}})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path+"?tab=gallery&status=saved", resp.Header.Get(fiber.HeaderLocation))

	images, err := env.gallery.List()
	require.NoError(t, err)
	require.Len(t, images, 4)
	assert.Equal(t, "https://example.com/cut.jpg", images[3].URL)
	assert.Equal(t, gallery.DefaultAlt, images[3].Alt)

	resp = postForm(t, env.app, Path+"/gallery", url.Values{"url": {"   "}})
	defer resp.Body.Close()

	assert.Equal(t, Path+"?tab=gallery&status=invalid", resp.Header.Get(fiber.HeaderLocation))
}

func TestPostGalleryDelete(t *testing.T) {
	env := newTestEnv(t, nil)

	images, err := env.gallery.List()
	require.NoError(t, err)
	require.NotEmpty(t, images)

	resp := postForm(t, env.app, Path+"/gallery/"+images[0].ID+"/delete", url.Values{})
	defer resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, Path+"?tab=gallery&status=saved", resp.Header.Get(fiber.HeaderLocation))

	after, err := env.gallery.List()
	require.NoError(t, err)
	assert.Len(t, after, len(images)-1)

	// unknown ids are a no-op
	resp = postForm(t, env.app, Path+"/gallery/missing/delete", url.Values{})
	defer resp.Body.Close()

	assert.Equal(t, Path+"?tab=gallery&status=saved", resp.Header.Get(fiber.HeaderLocation))
}
