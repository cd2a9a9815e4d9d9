package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
organization:
  name: Helse Nord
  environment: production
  assessed_by: Ola Nordmann
output:
  format: text
data_dir: /var/lib/helsegrad
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Helse Nord", cfg.Organization.Name)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "/var/lib/helsegrad", cfg.DataDir)
	assert.Equal(t, filepath.Join("/var/lib/helsegrad", "helsegrad.db"), cfg.DatabasePath())
}

func TestLoadInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: pdf\n"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Format)
	assert.NotEmpty(t, cfg.DataDir)

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Output.Format)
}
