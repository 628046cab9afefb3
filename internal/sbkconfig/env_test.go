package sbkconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbk-go/sbk/internal/randsrc"
	"github.com/sbk-go/sbk/internal/sbkconfig"
)

func fakeEnv(values map[string]string) sbkconfig.Getenv {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestApplyEnvironmentOverridesScheme(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	env := fakeEnv(map[string]string{
		sbkconfig.EnvThreshold: "4",
		sbkconfig.EnvNumShares: "7",
	})

	sbkconfig.ApplyEnvironment(cfg, env)

	assert.Equal(t, 4, cfg.Scheme.Threshold)
	assert.Equal(t, 7, cfg.Scheme.Shares)
}

func TestApplyEnvironmentInvalidValueWarnsAndKeepsDefault(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	original := cfg.Scheme.Threshold
	env := fakeEnv(map[string]string{
		sbkconfig.EnvThreshold: "not-a-number",
	})

	sbkconfig.ApplyEnvironment(cfg, env)

	assert.Equal(t, original, cfg.Scheme.Threshold)
	require.NotEmpty(t, cfg.Warnings)
}

func TestApplyEnvironmentDebugOverridesReturned(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	env := fakeEnv(map[string]string{
		sbkconfig.EnvDebugRawSaltLen:  "8",
		sbkconfig.EnvDebugBrainKeyLen: "4",
		sbkconfig.EnvMinEntropy:       "20",
	})

	dbg := sbkconfig.ApplyEnvironment(cfg, env)

	assert.Equal(t, 8, dbg.RawSaltLen)
	assert.Equal(t, 4, dbg.BrainKeyLen)
	assert.Equal(t, 20, dbg.MinEntropy)
}

func TestApplyEnvironmentRNGSeedRequiresAllowDebugRNG(t *testing.T) {
	cfg := sbkconfig.Defaults()
	env := fakeEnv(map[string]string{
		sbkconfig.EnvDebugRNGSeed: "42",
	})

	randsrc.AllowDebugRNG = false
	dbg := sbkconfig.ApplyEnvironment(cfg, env)
	assert.False(t, dbg.HasRNGSeed)

	randsrc.AllowDebugRNG = true
	defer func() { randsrc.AllowDebugRNG = false }()
	dbg = sbkconfig.ApplyEnvironment(cfg, env)
	assert.True(t, dbg.HasRNGSeed)
	assert.Equal(t, int64(42), dbg.RNGSeed)
}

func TestApplyEnvironmentNoColor(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	env := fakeEnv(map[string]string{
		sbkconfig.EnvNoColor: "",
	})

	sbkconfig.ApplyEnvironment(cfg, env)
	assert.Equal(t, "never", cfg.Output.Color)
}

func TestApplyEnvironmentVerboseParsing(t *testing.T) {
	t.Parallel()
	cfg := sbkconfig.Defaults()
	env := fakeEnv(map[string]string{
		sbkconfig.EnvVerbose: "yes",
	})

	sbkconfig.ApplyEnvironment(cfg, env)
	assert.True(t, cfg.Output.Verbose)
}
