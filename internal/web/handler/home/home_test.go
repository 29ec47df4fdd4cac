package home

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
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

// recordingViews is a minimal Fiber Views engine keeping the last rendered data.
type recordingViews struct {
	name   string
	layout string
	data   fiber.Map
}

func (*recordingViews) Load() error { return nil }

func (v *recordingViews) Render(w io.Writer, name string, data any, layout ...string) error {
	v.name = name
	v.data, _ = data.(fiber.Map)

	if len(layout) > 0 {
		v.layout = layout[0]
	}

	_, _ = io.WriteString(w, name)

	return nil
}

func newTestApp(t *testing.T, dir string) (*fiber.App, *recordingViews) {
	t.Helper()

	views := &recordingViews{}
	app := fiber.New(fiber.Config{Views: views})

	backend := document.FileBackend{Dir: dir}
	s := &Service{}
	s.Init(app, &config.Config{Title: "Houston Barbers - Premium Barbershop in Houston, TX"}, &handler.Deps{
		Settings: settings.New(settings.NewStore(backend)),
		Gallery:  gallery.New(gallery.NewStore(backend)),
	})

	return app, views
}

func TestGet(t *testing.T) {
	app, views := newTestApp(t, t.TempDir())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/?contact=sent", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, TemplateName, views.name)
	assert.Equal(t, handler.BaseLayout, views.layout)

	site, ok := views.data["Settings"].(*models.SiteSettings)
	require.True(t, ok)
	assert.Equal(t, "Houston Barbers", site.BusinessName)

	images, ok := views.data["Gallery"].([]models.GalleryImage)
	require.True(t, ok)
	assert.Len(t, images, 3)

	offers, ok := views.data["Offers"].([]Offer)
	require.True(t, ok)
	require.Len(t, offers, 4)
	assert.Equal(t, "$55", offers[2].Price)

	page, ok := views.data["Page"].(handler.Page)
	require.True(t, ok)
	assert.Equal(t, "#d4af37", page.Theme.Secondary)
	assert.Equal(t, "Houston Barbers", page.ShopName)
	assert.Len(t, page.Navigation.Links, 5)

	assert.Equal(t, ContactSent, views.data["Contact"])
}

func TestGetFallsBackOnBrokenDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gallery.json"), []byte("["), 0o600))

	app, views := newTestApp(t, dir)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	site, _ := views.data["Settings"].(*models.SiteSettings)
	require.NotNil(t, site)
	assert.Equal(t, settings.Default(), *site)
	assert.Empty(t, views.data["Gallery"])
}

func TestPostContact(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "valid",
			form: url.Values{"name": {"Sam"}, "email": {"sam@example.com"}, "message": {"Saturday 10am?"}},
			want: ContactSent,
		},
		{
			name: "invalid email",
			form: url.Values{"name": {"Sam"}, "email": {"sam"}, "message": {"hi"}},
			want: ContactInvalid,
		},
		{
			name: "missing message",
			form: url.Values{"name": {"Sam"}, "email": {"sam@example.com"}},
			want: ContactInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, t.TempDir())

			req := httptest.NewRequest(fiber.MethodPost, ContactPath, strings.NewReader(tt.form.Encode()))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/?contact="+tt.want+"#contact", resp.Header.Get(fiber.HeaderLocation))
		})
	}
}
