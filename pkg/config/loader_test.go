package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit/pkg/config"
)

type testConfigDefault struct {
	Name  string `env:"TEST_NAME_DEFAULT" envDefault:"default_value"`
	Count int    `env:"TEST_COUNT_DEFAULT" envDefault:"42"`
	On    bool   `env:"TEST_ON_DEFAULT" envDefault:"true"`
}

type testConfigSuccess struct {
	Name  string `env:"TEST_NAME_SUCCESS" envDefault:"default_value"`
	Count int    `env:"TEST_COUNT_SUCCESS" envDefault:"42"`
	On    bool   `env:"TEST_ON_SUCCESS" envDefault:"true"`
}

type testConfigCached struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"first"`
}

type testConfigFile struct {
	Value string `env:"TEST_VALUE_FROM_FILE"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_NAME_SUCCESS", "test_value")
	t.Setenv("TEST_COUNT_SUCCESS", "100")
	t.Setenv("TEST_ON_SUCCESS", "false")

	var cfg testConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
	assert.False(t, cfg.On)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()

	var cfg testConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.On)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_VALUE_CACHED", "first")

	var first testConfigCached
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_VALUE_CACHED", "second")
	var second testConfigCached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached copy must be returned")

	config.ResetCache()
	var third testConfigCached
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()

	var nilCfg *testConfigDefault
	require.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_VALUE_FROM_FILE=from_file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_VALUE_FROM_FILE") })

	require.NoError(t, config.LoadEnv(path))

	var cfg testConfigFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	require.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}
