package gallery

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersite/barbersite/internal/config"
	"github.com/barbersite/barbersite/internal/db/models"
	"github.com/barbersite/barbersite/internal/document"
	sitegallery "github.com/barbersite/barbersite/internal/site/gallery"
	"github.com/barbersite/barbersite/internal/web/handler"
)

func newTestApp(t *testing.T, dir string, guard fiber.Handler) *fiber.App {
	t.Helper()

	app := fiber.New()
	s := &Service{}
	s.Init(app, &config.Config{}, &handler.Deps{
		Gallery: sitegallery.New(sitegallery.NewStore(document.FileBackend{Dir: dir})),
		Guard:   guard,
	})

	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestList(t *testing.T) {
	app := newTestApp(t, t.TempDir(), nil)

	var images []models.GalleryImage
	require.Equal(t, http.StatusOK, do(t, app, fiber.MethodGet, Path, "", &images))

	require.Len(t, images, 3)
	assert.Equal(t, "1", images[0].ID)
	assert.Equal(t, "Barber shop interior", images[2].Alt)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
		wantAlt    string
	}{
		{name: "url only", body: `{"url":"http://x/a.png"}`, wantStatus: http.StatusCreated, wantAlt: sitegallery.DefaultAlt},
		{name: "url and alt", body: `{"url":"http://x/a.png","alt":"Skin fade"}`, wantStatus: http.StatusCreated, wantAlt: "Skin fade"},
		{name: "missing url", body: `{"alt":"Skin fade"}`, wantStatus: http.StatusBadRequest, wantError: ErrMsgURLRequired},
		{name: "malformed body", body: `{"url":`, wantStatus: http.StatusInternalServerError, wantError: ErrMsgAdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, t.TempDir(), nil)

			if tt.wantError != "" {
				var body handler.ErrorResponse
				assert.Equal(t, tt.wantStatus, do(t, app, fiber.MethodPost, Path, tt.body, &body))
				assert.Equal(t, tt.wantError, body.Error)

				return
			}

			var image models.GalleryImage
			require.Equal(t, tt.wantStatus, do(t, app, fiber.MethodPost, Path, tt.body, &image))

			assert.NotEmpty(t, image.ID)
			assert.Equal(t, "http://x/a.png", image.URL)
			assert.Equal(t, tt.wantAlt, image.Alt)

			_, err := time.Parse(sitegallery.TimeFormat, image.CreatedAt)
			require.NoError(t, err)

			var images []models.GalleryImage
			require.Equal(t, http.StatusOK, do(t, app, fiber.MethodGet, Path, "", &images))
			require.Len(t, images, 4)
			assert.Equal(t, image, images[3])
		})
	}
}

func TestRemove(t *testing.T) {
	app := newTestApp(t, t.TempDir(), nil)

	var errBody handler.ErrorResponse
	assert.Equal(t, http.StatusBadRequest, do(t, app, fiber.MethodDelete, Path, "", &errBody))
	assert.Equal(t, ErrMsgIDRequired, errBody.Error)

	var ok DeleteResponse
	require.Equal(t, http.StatusOK, do(t, app, fiber.MethodDelete, Path+"?id=2", "", &ok))
	assert.True(t, ok.Success)

	// unknown ids succeed as well
	require.Equal(t, http.StatusOK, do(t, app, fiber.MethodDelete, Path+"?id=unknown", "", &ok))

	var images []models.GalleryImage
	require.Equal(t, http.StatusOK, do(t, app, fiber.MethodGet, Path, "", &images))
	require.Len(t, images, 2)
	assert.Equal(t, "1", images[0].ID)
	assert.Equal(t, "3", images[1].ID)
}

func TestListVerbatim(t *testing.T) {
	dir := t.TempDir()
	stored := `[{"id":1,"url":"http://x/1.png","caption":"fade"},{"id":"2","url":"http://x/2.png"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, sitegallery.DocumentName+".json"), []byte(stored), 0o600))

	app := newTestApp(t, dir, nil)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, Path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, stored, string(body))
}

func TestServerErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, sitegallery.DocumentName+".json"), []byte("[{"), 0o600))

	app := newTestApp(t, dir, nil)

	var body handler.ErrorResponse
	assert.Equal(t, http.StatusInternalServerError, do(t, app, fiber.MethodGet, Path, "", &body))
	assert.Equal(t, ErrMsgFetch, body.Error)

	assert.Equal(t, http.StatusInternalServerError, do(t, app, fiber.MethodPost, Path, `{"url":"http://x/a.png"}`, &body))
	assert.Equal(t, ErrMsgAdd, body.Error)

	assert.Equal(t, http.StatusInternalServerError, do(t, app, fiber.MethodDelete, Path+"?id=1", "", &body))
	assert.Equal(t, ErrMsgDelete, body.Error)
}

func TestGuard(t *testing.T) {
	deny := func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	app := newTestApp(t, t.TempDir(), deny)

	assert.Equal(t, http.StatusOK, do(t, app, fiber.MethodGet, Path, "", nil))
	assert.Equal(t, http.StatusUnauthorized, do(t, app, fiber.MethodPost, Path, `{"url":"http://x/a.png"}`, nil))
	assert.Equal(t, http.StatusUnauthorized, do(t, app, fiber.MethodDelete, Path+"?id=1", "", nil))
}
