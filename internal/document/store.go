package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Store reads and writes one named document.
type Store struct {
	mu      sync.Mutex
	backend Backend
	name    string
	seed    func() any
}

// New returns a Store for the document name. seed returns the value written
// when the document does not exist yet.
func New(backend Backend, name string, seed func() any) *Store {
	return &Store{
		backend: backend,
		name:    name,
		seed:    seed,
	}
}

// Name returns the document name.
func (s *Store) Name() string {
	return s.name
}

// EnsureExists writes the seed if the document is missing.
func (s *Store) EnsureExists() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "ensure", err) }()

	return s.ensureExists()
}

// Read decodes the document into v.
func (s *Store) Read(v any) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "read", err) }()

	if err = s.ensureExists(); err != nil {
		return err
	}

	return s.read(v)
}

// Write replaces the document with v.
func (s *Store) Write(v any) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "write", err) }()

	return s.write(v)
}

// Update reads the document into v, calls mutate and writes v back, all while
// holding the store lock. An error from mutate is returned as is and nothing is written,
// except ErrUnchanged which makes Update return nil without writing.
func (s *Store) Update(v any, mutate func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "update", err) }()

	if err = s.ensureExists(); err != nil {
		return err
	}

	if err = s.read(v); err != nil {
		return err
	}

	if err = mutate(); err != nil {
		if errors.Is(err, ErrUnchanged) {
			return nil
		}

		return err
	}

	return s.write(v)
}

// Raw returns the persisted bytes of the document.
func (s *Store) Raw() (data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "raw", err) }()

	if err = s.ensureExists(); err != nil {
		return nil, err
	}

	data, err = s.backend.Load(s.name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, s.name, err)
	}

	return data, nil
}

// CompareAndSwap writes v only if the persisted bytes still equal expected,
// as previously returned by Raw. It reports whether v was written.
func (s *Store) CompareAndSwap(expected []byte, v any) (swapped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "cas", err) }()

	if err = s.ensureExists(); err != nil {
		return false, err
	}

	current, err := s.backend.Load(s.name)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", ErrRead, s.name, err)
	}

	if !bytes.Equal(current, expected) {
		return false, nil
	}

	if err = s.write(v); err != nil {
		return false, err
	}

	return true, nil
}

// Reset deletes the document and writes the seed again.
func (s *Store) Reset() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { observe(s.name, "reset", err) }()

	if err = s.backend.Delete(s.name); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.name, err)
	}

	return s.write(s.seed())
}

func (s *Store) ensureExists() error {
	ok, err := s.backend.Exists(s.name)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrRead, s.name, err)
	}

	if ok {
		return nil
	}

	return s.write(s.seed())
}

func (s *Store) read(v any) error {
	data, err := s.backend.Load(s.name)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrRead, s.name, err)
	}

	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w %s: %w", ErrRead, s.name, err)
	}

	return nil
}

func (s *Store) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.name, err)
	}

	if err = s.backend.Save(s.name, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, s.name, err)
	}

	return nil
}
