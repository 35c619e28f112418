/*
Copyright © 2025 Servicer Authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"context"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBin drops an executable file into dir and returns its path.
func fakeBin(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755))
	return p
}

// currentUser skips the test when the process owner cannot be resolved.
func currentUser(t *testing.T) string {
	t.Helper()
	u, err := user.Current()
	if err != nil {
		t.Skipf("cannot resolve current user: %v", err)
	}
	return u.Username
}

func TestInterpreterFor(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{target: "index.js", want: "node"},
		{target: "/srv/app/server.js", want: "node"},
		{target: "worker.py", want: "python3"},
		{target: "run.sh", want: ""},
		{target: "mybin", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpreterFor(tt.target))
		})
	}
}

func TestResolveCommand_EmptyCommand(t *testing.T) {
	_, err := ResolveCommand(context.Background(), nil, "", "root")
	assert.ErrorIs(t, err, ErrNoCommand)
}

func TestResolveCommand_InferredInterpreter(t *testing.T) {
	runAs := currentUser(t)
	binDir := t.TempDir()
	node := fakeBin(t, binDir, "node")
	t.Setenv("PATH", binDir)

	cmd, err := ResolveCommand(context.Background(), []string{"index.js"}, "", runAs)
	require.NoError(t, err)
	assert.True(t, cmd.InterpreterResolved)
	assert.Equal(t, []string{node, "index.js"}, cmd.Tokens)
}

func TestResolveCommand_ExplicitInterpreter(t *testing.T) {
	runAs := currentUser(t)
	binDir := t.TempDir()
	python := fakeBin(t, binDir, "python3")
	t.Setenv("PATH", binDir)

	// Explicit interpreter wins even for a target with no known extension.
	cmd, err := ResolveCommand(context.Background(), []string{"myscript", "--flag"}, "python3", runAs)
	require.NoError(t, err)
	assert.True(t, cmd.InterpreterResolved)
	assert.Equal(t, []string{python, "myscript", "--flag"}, cmd.Tokens)
}

func TestResolveCommand_InterpreterNotFound(t *testing.T) {
	runAs := currentUser(t)
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveCommand(context.Background(), []string{"index.js"}, "", runAs)
	assert.ErrorIs(t, err, ErrBinaryNotFound)
}

func TestResolveCommand_DirectExecution(t *testing.T) {
	runAs := currentUser(t)
	binDir := t.TempDir()
	mybin := fakeBin(t, binDir, "mybin")
	t.Setenv("PATH", binDir)

	cmd, err := ResolveCommand(context.Background(), []string{"mybin", "arg"}, "", runAs)
	require.NoError(t, err)
	assert.False(t, cmd.InterpreterResolved)
	assert.Equal(t, []string{mybin, "arg"}, cmd.Tokens)
}

func TestResolveCommand_ExistingFileKeptAsIs(t *testing.T) {
	runAs := currentUser(t)
	dir := t.TempDir()
	bin := fakeBin(t, dir, "run.sh")

	cmd, err := ResolveCommand(context.Background(), []string{bin}, "", runAs)
	require.NoError(t, err)
	assert.False(t, cmd.InterpreterResolved)
	assert.Equal(t, []string{bin}, cmd.Tokens)
}

func TestResolveCommand_UnresolvableBareCommand(t *testing.T) {
	runAs := currentUser(t)
	t.Setenv("PATH", t.TempDir())

	// A bare token that is neither a file nor on PATH passes through;
	// systemd reports the failure at start time.
	cmd, err := ResolveCommand(context.Background(), []string{"no-such-binary"}, "", runAs)
	require.NoError(t, err)
	assert.Equal(t, []string{"no-such-binary"}, cmd.Tokens)
}

func TestLookPathAsUser_AbsolutePath(t *testing.T) {
	runAs := currentUser(t)
	dir := t.TempDir()
	bin := fakeBin(t, dir, "tool")

	got, err := LookPathAsUser(context.Background(), bin, runAs)
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = LookPathAsUser(context.Background(), filepath.Join(dir, "missing"), runAs)
	assert.ErrorIs(t, err, ErrBinaryNotFound)
}

func TestWorkingDir(t *testing.T) {
	appDir := t.TempDir()
	target := filepath.Join(appDir, "index.js")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name                string
		explicit            string
		target              string
		interpreterResolved bool
		want                string
		wantErr             error
	}{
		{
			name:     "explicit directory wins",
			explicit: appDir,
			target:   target,
			want:     appDir,
		},
		{
			name:     "explicit missing directory",
			explicit: filepath.Join(appDir, "nope"),
			wantErr:  ErrUnknownDirectory,
		},
		{
			name:     "explicit path is a file",
			explicit: target,
			wantErr:  ErrUnknownDirectory,
		},
		{
			name:                "interpreter target parent",
			target:              target,
			interpreterResolved: true,
			want:                appDir,
		},
		{
			name:                "bare interpreter target falls back to cwd",
			target:              "index.js",
			interpreterResolved: true,
			want:                cwd,
		},
		{
			name:   "direct execution falls back to cwd",
			target: "mybin",
			want:   cwd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WorkingDir(tt.explicit, tt.target, tt.interpreterResolved)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
