package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	b := FileBackend{Dir: filepath.Join(t.TempDir(), "nested", "data")}

	ok, err := b.Exists("settings")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = b.Load("settings")
	require.ErrorIs(t, err, ErrNotExist)

	// Save creates missing directories
	require.NoError(t, b.Save("settings", []byte(`{"a":1}`)))

	ok, err = b.Exists("settings")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := b.Load("settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	require.NoError(t, b.Save("settings", []byte(`{"a":2}`)))

	data, err = b.Load("settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))

	// only the document remains, no temp files
	entries, err := os.ReadDir(b.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "settings.json", entries[0].Name())

	info, err := os.Stat(b.Path("settings"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	require.NoError(t, b.Delete("settings"))
	require.NoError(t, b.Delete("settings"), "deleting a missing document is not an error")

	ok, err = b.Exists("settings")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileBackendInvalidName(t *testing.T) {
	b := FileBackend{Dir: t.TempDir()}

	for _, name := range []string{"", ".", "..", "../settings", `a\b`, "a/b"} {
		t.Run(name, func(t *testing.T) {
			_, err := b.Exists(name)
			require.ErrorIs(t, err, ErrInvalidName)

			_, err = b.Load(name)
			require.ErrorIs(t, err, ErrInvalidName)

			require.ErrorIs(t, b.Save(name, []byte("{}")), ErrInvalidName)
			require.ErrorIs(t, b.Delete(name), ErrInvalidName)
		})
	}
}

func TestFileBackendSaveOverDirectory(t *testing.T) {
	b := FileBackend{Dir: t.TempDir()}

	// a directory in place of the document makes the rename fail
	require.NoError(t, os.MkdirAll(filepath.Join(b.Path("gallery"), "child"), dirPerm))

	require.Error(t, b.Save("gallery", []byte("[]")))

	entries, err := os.ReadDir(b.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be removed after a failed save")
}
