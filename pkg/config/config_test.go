package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
	Slides  int           `env:"SLIDES,required"`
}

// Tests below mutate process env, so they do not run in parallel.

func TestLoad(t *testing.T) {
	t.Setenv("SLIDES", "4")

	cfg, err := config.Load[serverConfig](config.WithEnvFiles())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Slides)
}

func TestLoadPrefix(t *testing.T) {
	t.Setenv("LANDING_SLIDES", "2")
	t.Setenv("LANDING_ADDR", ":9000")

	cfg, err := config.Load[serverConfig](config.WithEnvFiles(), config.WithPrefix("LANDING_"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 2, cfg.Slides)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("ENVFILE_SLIDES=7\nENVFILE_TIMEOUT=1s\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("ENVFILE_SLIDES")
		os.Unsetenv("ENVFILE_TIMEOUT")
	})

	cfg, err := config.Load[serverConfig](
		config.WithEnvFiles(file, filepath.Join(dir, "missing.env")),
		config.WithPrefix("ENVFILE_"),
	)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Slides)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load[serverConfig](config.WithEnvFiles(), config.WithPrefix("MISSING_"))
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("BAD_SLIDES", "three")
	_, err = config.Load[serverConfig](config.WithEnvFiles(), config.WithPrefix("BAD_"))
	require.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		config.MustLoad[serverConfig](config.WithEnvFiles(), config.WithPrefix("MISSING_"))
	})
}
