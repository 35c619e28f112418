package unit

import (
	"errors"
	"path/filepath"
	"strings"

	sdunit "github.com/coreos/go-systemd/v22/unit"
)

const (
	// UnitSuffix namespaces every unit this tool manages.
	UnitSuffix = ".servicer.service"
	// DefaultDir is the systemd system unit directory.
	DefaultDir = "/etc/systemd/system"
)

// ErrEmptyName indicates a service name could not be determined.
var ErrEmptyName = errors.New("service name is empty")

// Name identifies one managed service: the operator-facing logical
// name, the namespaced unit identifier, and the unit-file path.
type Name struct {
	Logical string
	Unit    string
	Path    string
}

// Resolve maps a logical service name to its namespaced unit identifier
// and on-disk definition path. Characters systemd does not allow in
// unit names are escaped the way systemd-escape would.
func Resolve(logical, dir string) (Name, error) {
	logical = strings.TrimSpace(logical)
	if logical == "" {
		return Name{}, ErrEmptyName
	}
	if dir == "" {
		dir = DefaultDir
	}
	u := sdunit.UnitNameEscape(logical) + UnitSuffix
	return Name{
		Logical: logical,
		Unit:    u,
		Path:    filepath.Join(dir, u),
	}, nil
}

// FromTarget derives the default logical name from the base name of the
// target file or command.
func FromTarget(target string) string {
	return filepath.Base(target)
}

// Logical recovers the logical service name from a namespaced unit
// identifier. Returns "" when the unit is not managed by this tool.
func Logical(unitName string) string {
	if !strings.HasSuffix(unitName, UnitSuffix) {
		return ""
	}
	return sdunit.UnitNameUnescape(strings.TrimSuffix(unitName, UnitSuffix))
}
