/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package identity captures who invoked the CLI. The Identity value is
// populated once at the process boundary and passed down explicitly so
// that core logic never reads the environment on its own.
package identity

import (
	"errors"
	"os"
	"os/user"
)

// ErrNoUser indicates that no run-as user could be determined from the
// environment and none was supplied by the operator.
var ErrNoUser = errors.New("unable to determine a run-as user")

// Identity describes the invoking operator.
type Identity struct {
	// Invoking is the user that ran the CLI.
	Invoking string
	// SudoOrigin is the original user when the CLI was run through
	// sudo, empty otherwise.
	SudoOrigin string
}

// FromEnvironment builds an Identity from the process environment.
// SUDO_USER is preserved separately so services created under sudo
// default to the operator's own account rather than root.
func FromEnvironment() Identity {
	id := Identity{
		Invoking:   os.Getenv("USER"),
		SudoOrigin: os.Getenv("SUDO_USER"),
	}
	if id.Invoking == "" {
		if u, err := user.Current(); err == nil {
			id.Invoking = u.Username
		}
	}
	return id
}

// RunAsDefault returns the user a new service runs as when the operator
// did not choose one: the sudo-origin user when elevated, otherwise the
// invoking user.
func (i Identity) RunAsDefault() (string, error) {
	if i.SudoOrigin != "" {
		return i.SudoOrigin, nil
	}
	if i.Invoking != "" {
		return i.Invoking, nil
	}
	return "", ErrNoUser
}
