/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package resolver turns the ambiguous parts of a create request into
// concrete values: which binary actually runs, and in which directory.
//
// Interpreter selection order: an explicit interpreter wins, then the
// target's file extension is consulted (.js runs under node, .py under
// python3), then the target is executed directly. A bare first token
// that is not a file on disk is looked up on the run-as user's PATH as
// a last resort.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

var (
	// ErrNoCommand indicates an empty command line.
	ErrNoCommand = errors.New("no command provided")
	// ErrBinaryNotFound indicates a binary could not be resolved on
	// the target user's PATH.
	ErrBinaryNotFound = errors.New("binary not found on PATH")
	// ErrUnknownDirectory indicates the requested working directory
	// does not exist.
	ErrUnknownDirectory = errors.New("unknown directory")
)

// interpreters maps recognized script extensions to the default
// interpreter binary used to run them.
var interpreters = map[string]string{
	".js": "node",
	".py": "python3",
}

// InterpreterFor returns the default interpreter for the target's
// extension, or "" when the target should be executed directly.
func InterpreterFor(target string) string {
	return interpreters[filepath.Ext(target)]
}

// Command is the final, unambiguous command line for a service.
type Command struct {
	Tokens []string
	// InterpreterResolved reports whether an interpreter binary was
	// prepended. It also drives the working-directory default.
	InterpreterResolved bool
}

// ResolveCommand produces the final ExecStart token list from the raw
// command and an optional explicit interpreter. An interpreter that was
// requested or inferred must resolve; a bare command that cannot be
// found on PATH is left as-is, since it may still be a valid relative
// executable.
func ResolveCommand(ctx context.Context, command []string, interpreter, runAs string) (Command, error) {
	if len(command) == 0 {
		return Command{}, ErrNoCommand
	}
	target := command[0]

	name := interpreter
	if name == "" {
		name = InterpreterFor(target)
	}
	if name != "" {
		bin, err := LookPathAsUser(ctx, name, runAs)
		if err != nil {
			return Command{}, fmt.Errorf("resolving interpreter %q for user %s: %w", name, runAs, err)
		}
		tokens := make([]string, 0, len(command)+1)
		tokens = append(tokens, bin)
		tokens = append(tokens, command...)
		return Command{Tokens: tokens, InterpreterResolved: true}, nil
	}

	tokens := append([]string(nil), command...)
	if info, err := os.Stat(target); err != nil || info.IsDir() {
		if bin, err := LookPathAsUser(ctx, target, runAs); err == nil {
			tokens[0] = bin
		}
	}
	return Command{Tokens: tokens}, nil
}

// LookPathAsUser resolves a binary name to an absolute path on the
// given user's PATH. Lookups for the process owner use exec.LookPath;
// other users are queried through a login shell so their own PATH
// applies. An absolute path is only checked for existence.
func LookPathAsUser(ctx context.Context, bin, runAs string) (string, error) {
	if filepath.IsAbs(bin) {
		if _, err := os.Stat(bin); err != nil {
			return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, bin)
		}
		return bin, nil
	}

	if current, err := user.Current(); err == nil && current.Username == runAs {
		p, err := exec.LookPath(bin)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, bin)
		}
		return filepath.Abs(p)
	}

	out, err := exec.CommandContext(ctx, "sudo", "-u", runAs, "-i", "which", bin).Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s (user %s)", ErrBinaryNotFound, bin, runAs)
	}
	p := strings.TrimSpace(string(out))
	if p == "" {
		return "", fmt.Errorf("%w: %s (user %s)", ErrBinaryNotFound, bin, runAs)
	}
	return p, nil
}

// WorkingDir resolves the service working directory: an explicit
// directory wins, then the target file's parent when an interpreter was
// resolved, then the invocation's current directory.
func WorkingDir(explicit, target string, interpreterResolved bool) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrUnknownDirectory, explicit)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrUnknownDirectory, explicit)
		}
		return abs, nil
	}

	if interpreterResolved {
		if parent := filepath.Dir(target); parent != "." {
			abs, err := filepath.Abs(parent)
			if err != nil {
				return "", fmt.Errorf("%w: %s", ErrUnknownDirectory, parent)
			}
			if info, err := os.Stat(abs); err != nil || !info.IsDir() {
				return "", fmt.Errorf("%w: %s", ErrUnknownDirectory, parent)
			}
			return abs, nil
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving current directory: %w", err)
	}
	return dir, nil
}
