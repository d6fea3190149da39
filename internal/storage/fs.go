// Package storage persists generated wallpaper images on the local
// filesystem. Each job writes to a uniquely-named file, so the store is
// append-only and free of write-write conflicts.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("artifact not found")

// FSStore is a directory of generated images addressed by locator (bare file
// name). Safe for concurrent use: writes never touch the same name twice.
type FSStore struct {
	dir string
}

// NewFSStore creates the artifact directory if needed and returns the store.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &FSStore{dir: dir}, nil
}

// Dir returns the artifact directory, for static file serving.
func (s *FSStore) Dir() string { return s.dir }

// Save writes the image bytes under a name derived from the job id and
// returns the locator.
func (s *FSStore) Save(id uuid.UUID, data []byte) (string, error) {
	locator := id.String() + ".png"
	path := filepath.Join(s.dir, locator)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return locator, nil
}

// Load reads an artifact back by locator.
func (s *FSStore) Load(locator string) ([]byte, error) {
	path, err := s.resolve(locator)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

// Remove deletes an artifact by locator. Removing an unknown locator
// returns ErrNotFound.
func (s *FSStore) Remove(locator string) error {
	path, err := s.resolve(locator)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove artifact: %w", err)
	}
	return nil
}

// resolve validates the locator and returns the absolute path. Locators are
// bare file names; anything that could escape the directory is rejected.
func (s *FSStore) resolve(locator string) (string, error) {
	if locator == "" ||
		strings.ContainsAny(locator, `/\`) ||
		strings.Contains(locator, "..") {
		return "", ErrNotFound
	}
	return filepath.Join(s.dir, locator), nil
}
