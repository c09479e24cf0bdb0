package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Tiktally.Model)
	assert.True(t, cfg.Tiktally.Recursive)
	assert.True(t, cfg.Tiktally.ExitOnListError)
	assert.False(t, cfg.Tiktally.Quiet)
	assert.False(t, cfg.Tiktally.OfflineBPE)
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `tiktally:
  model: gpt-4-turbo
  quiet: true
  exitOnListError: false
  ignorePatterns:
    - "*.bin"
    - node_modules
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4-turbo", cfg.Tiktally.Model)
	assert.True(t, cfg.Tiktally.Quiet)
	assert.False(t, cfg.Tiktally.ExitOnListError)
	assert.Equal(t, []string{"*.bin", "node_modules"}, cfg.Tiktally.IgnorePatterns)
	assert.True(t, cfg.Tiktally.Recursive) // untouched keys keep their defaults
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err) // an explicit path that does not exist is a hard error
	assert.Nil(t, cfg)
}
