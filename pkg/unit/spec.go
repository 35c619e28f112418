package unit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCommand indicates a spec with no command tokens.
	ErrEmptyCommand = errors.New("no command provided")
	// ErrIncompleteSpec indicates a spec with unresolved fields.
	ErrIncompleteSpec = errors.New("unit spec is incomplete")
	// ErrInvalidEnvVar indicates an environment entry the template
	// cannot represent.
	ErrInvalidEnvVar = errors.New("invalid environment variable")
)

// Spec is a fully resolved service description, ready for templating.
// Every field is concrete: the interpreter (when one applies) is
// already the first command token, the working directory is absolute,
// and the user is the final run-as identity.
type Spec struct {
	Command     []string
	WorkingDir  string
	User        string
	EnvVars     []string
	AutoRestart bool
}

// Validate rejects input the synthesizer cannot represent. The template
// is line-oriented, so environment values holding newlines would
// corrupt the definition and are refused rather than escaped.
func (s Spec) Validate() error {
	if len(s.Command) == 0 {
		return ErrEmptyCommand
	}
	if s.User == "" {
		return fmt.Errorf("%w: run-as user is not set", ErrIncompleteSpec)
	}
	if s.WorkingDir == "" {
		return fmt.Errorf("%w: working directory is not set", ErrIncompleteSpec)
	}
	for _, kv := range s.EnvVars {
		key, _, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("%w: %q is not in KEY=VALUE form", ErrInvalidEnvVar, kv)
		}
		if strings.ContainsAny(kv, "\n\r") {
			return fmt.Errorf("%w: %q contains a line break", ErrInvalidEnvVar, kv)
		}
	}
	return nil
}
