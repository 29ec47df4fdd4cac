package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersite/barbersite/internal/document"
	"github.com/barbersite/barbersite/internal/site/settings"
)

// racingReader writes the settings from another writer once the first answer is read.
type racingReader struct {
	*strings.Reader
	svc  *settings.Service
	done bool
}

func (r *racingReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true

		if _, err := r.svc.Update(settings.Document{"phone": []byte(`"(555) 999-9999"`)}); err != nil {
			return 0, err
		}
	}

	return r.Reader.Read(p)
}

func TestRunSetup(t *testing.T) {
	store := settings.NewStore(document.FileBackend{Dir: t.TempDir()})
	svc := settings.New(store)

	_, err := svc.Update(settings.Document{"theme": []byte(`{"primary":"#000000","secondary":"#111111","accent":"#222222"}`)})
	require.NoError(t, err)

	in := strings.NewReader("Main Street Cuts\n\n(555) 010-0000\n\nhttps://facebook.com/cuts\n\n\n")

	var out bytes.Buffer
	require.NoError(t, runSetup(in, &out, store))

	assert.Contains(t, out.String(), "Business Name [Houston Barbers]: ")
	assert.Contains(t, out.String(), "Configuration saved.")

	site, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "Main Street Cuts", site.BusinessName)
	assert.Equal(t, settings.Default().Address, site.Address)
	assert.Equal(t, "(555) 010-0000", site.Phone)
	assert.Equal(t, settings.Default().Email, site.Email)
	assert.Equal(t, "https://facebook.com/cuts", site.SocialMedia.Facebook)
	assert.Empty(t, site.SocialMedia.Instagram)
	assert.Empty(t, site.SocialMedia.Twitter)
	assert.Equal(t, "#000000", site.Theme.Primary)
	assert.Equal(t, settings.Default().Hours, site.Hours)
}

func TestRunSetupEndOfInputKeepsValues(t *testing.T) {
	store := settings.NewStore(document.FileBackend{Dir: t.TempDir()})

	require.NoError(t, runSetup(strings.NewReader(""), &bytes.Buffer{}, store))

	site, err := settings.New(store).Load()
	require.NoError(t, err)
	assert.Equal(t, settings.Default().BusinessName, site.BusinessName)
	assert.Equal(t, settings.Default().Phone, site.Phone)
	assert.Empty(t, site.SocialMedia.Facebook)
}

func TestRunSetupDetectsConcurrentWrite(t *testing.T) {
	store := settings.NewStore(document.FileBackend{Dir: t.TempDir()})
	svc := settings.New(store)

	in := &racingReader{Reader: strings.NewReader("Main Street Cuts\n"), svc: svc}

	err := runSetup(in, &bytes.Buffer{}, store)
	require.ErrorIs(t, err, ErrSettingsChanged)

	site, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "(555) 999-9999", site.Phone)
	assert.Equal(t, settings.Default().BusinessName, site.BusinessName)
}
