package sbkconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbk-go/sbk/internal/sbkconfig"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := sbkconfig.Defaults()
	cfg.Scheme.Threshold = 3
	cfg.Scheme.Shares = 5
	cfg.Wallet.DefaultName = "savings"
	cfg.Output.Verbose = true

	require.NoError(t, sbkconfig.Save(cfg, path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := sbkconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.Scheme.Threshold, loaded.Scheme.Threshold)
	assert.Equal(t, cfg.Scheme.Shares, loaded.Scheme.Shares)
	assert.Equal(t, cfg.Wallet.DefaultName, loaded.Wallet.DefaultName)
	assert.Equal(t, cfg.Output.Verbose, loaded.Output.Verbose)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := sbkconfig.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("version: 1\nscheme:\n  threshold: 4\n"), 0o600))

	cfg, err := sbkconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Scheme.Threshold)
	// Fields absent from the file keep their Defaults() value.
	assert.Equal(t, sbkconfig.Defaults().KDF.TargetSeconds, cfg.KDF.TargetSeconds)
	assert.Equal(t, sbkconfig.Defaults().Wallet.DefaultName, cfg.Wallet.DefaultName)
}

func TestDefaultsScheme(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	assert.Equal(t, 2, cfg.Scheme.Threshold)
	assert.Equal(t, 3, cfg.Scheme.Shares)
	assert.Equal(t, "disabled", cfg.Wallet.DefaultName)
}

func TestPathJoinsHome(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("/home/user/.sbk", "config.yaml"), sbkconfig.Path("/home/user/.sbk"))
}
