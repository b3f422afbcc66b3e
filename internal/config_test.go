package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colstore.yaml")
	yaml := `
app_name: colstore
dump:
  dialect: quoted
  compatible: true
  granularity: 1024
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "colstore", cfg.AppName)
	assert.Equal(t, "quoted", cfg.Dump.Dialect)
	assert.True(t, cfg.Dump.Compatible)
	assert.Equal(t, 1024, cfg.Dump.Granularity)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app_name: colstore\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "escaped", cfg.Dump.Dialect)
	assert.Equal(t, 8192, cfg.Dump.Granularity)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/config.yaml")
	assert.Error(t, err)
}
