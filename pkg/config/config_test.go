package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultUnitDir, c.UnitDir)
	assert.Equal(t, DefaultFormat, c.Format)
	assert.Equal(t, DefaultJobTimeoutSeconds, c.JobTimeoutSeconds)
	assert.Equal(t, 30*time.Second, c.JobTimeout())
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_DefaultFileInHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".servicer.yaml"),
		[]byte("format: json\njobTimeoutSeconds: 10\n"),
		0o644,
	))

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 10*time.Second, c.JobTimeout())
	assert.Equal(t, DefaultUnitDir, c.UnitDir, "unset values keep defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servicer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unitDir: /run/systemd/system\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/run/systemd/system", c.UnitDir)
	assert.Equal(t, DefaultFormat, c.Format)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ZeroValuesRedefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servicer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobTimeoutSeconds: -5\nformat: \"\"\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultJobTimeoutSeconds, c.JobTimeoutSeconds)
	assert.Equal(t, DefaultFormat, c.Format)
}
