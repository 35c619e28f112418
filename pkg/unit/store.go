package unit

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// ErrAlreadyExists indicates a unit file is already present at the
// resolved path.
var ErrAlreadyExists = errors.New("unit file already exists")

// Store persists synthesized unit definitions under a single directory.
type Store struct {
	Dir string
}

// NewStore returns a Store rooted at dir, defaulting to the systemd
// system unit directory.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

// Resolve maps a logical name into this store's directory.
func (st *Store) Resolve(logical string) (Name, error) {
	return Resolve(logical, st.Dir)
}

// Exists reports whether a unit file is present at the resolved path.
func (st *Store) Exists(n Name) bool {
	_, err := os.Stat(n.Path)
	return err == nil
}

// Write persists a definition atomically. It refuses to overwrite an
// existing file: a unit the operator authored by hand must never be
// destroyed by a name collision.
func (st *Store) Write(n Name, text string) error {
	if st.Exists(n) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, n.Path)
	}
	if err := renameio.WriteFile(n.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing unit file %s: %w", n.Path, err)
	}
	return nil
}

// Remove deletes the unit file.
func (st *Store) Remove(n Name) error {
	if err := os.Remove(n.Path); err != nil {
		return fmt.Errorf("removing unit file %s: %w", n.Path, err)
	}
	return nil
}

// Read returns the persisted definition text.
func (st *Store) Read(n Name) (string, error) {
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return "", fmt.Errorf("reading unit file %s: %w", n.Path, err)
	}
	return string(data), nil
}
