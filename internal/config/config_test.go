package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	cfg, err := Read(nil)
	require.NoError(t, err)
	assert.Equal(t, defaultAddr, cfg.Addr)
	assert.Equal(t, defaultTemplates, cfg.TemplatesGlob)
	assert.Equal(t, defaultStatic, cfg.StaticDir)
	assert.False(t, cfg.DebugFlag)
}

func TestReadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("DB_DSN", "postgres://env")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Read(nil)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestReadFlagBeatsEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")

	cfg, err := Read([]string{"-addr", ":7070", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.True(t, cfg.DebugFlag)
}
