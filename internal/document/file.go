package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o750
	filePerm = 0o644
)

// FileBackend keeps every document in <Dir>/<name>.json.
type FileBackend struct {
	Dir string
}

// Path returns the file holding the document name.
func (b FileBackend) Path(name string) string {
	return filepath.Join(b.Dir, name+fileExt)
}

// Exists implements Backend.
func (b FileBackend) Exists(name string) (bool, error) {
	if !validName(name) {
		return false, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	_, err := os.Stat(b.Path(name))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err //nolint:wrapcheck
	}
}

// Load implements Backend.
func (b FileBackend) Load(name string) ([]byte, error) {
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotExist, b.Path(name))
	}

	return data, err //nolint:wrapcheck
}

// Save implements Backend. The data is written to a temporary file next to
// the target and renamed over it, so readers never see a partial document.
func (b FileBackend) Save(name string, data []byte) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := os.MkdirAll(b.Dir, dirPerm); err != nil {
		return fmt.Errorf("create data directory %s: %w", b.Dir, err)
	}

	tmp, err := os.CreateTemp(b.Dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	if err = writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, b.Path(name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", b.Path(name), err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}

	if err == nil {
		err = f.Chmod(filePerm)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("write %s: %w", f.Name(), err)
	}

	return nil
}

// Delete implements Backend.
func (b FileBackend) Delete(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if err := os.Remove(b.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err //nolint:wrapcheck
	}

	return nil
}
