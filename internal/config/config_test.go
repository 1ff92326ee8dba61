// Package config tests.
package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 64, cfg.ArtifactCacheSize)
	assert.Equal(t, "", cfg.DatasetPath)
}

func TestLoad_CustomPort(t *testing.T) {
	os.Clearenv()
	t.Setenv("HTTP_PORT", "9090")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
}

func TestLoad_InvalidPort(t *testing.T) {
	os.Clearenv()
	t.Setenv("HTTP_PORT", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	os.Clearenv()
	t.Setenv("ARTIFACT_CACHE_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadWithPrefix(t *testing.T) {
	os.Clearenv()
	t.Setenv("THESIS_HTTP_PORT", "7070")
	cfg, err := LoadWithPrefix("THESIS")
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.HTTPPort)
}

func TestCORSOriginList(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.CORSOriginList())

	cfg.CORSOrigins = "https://app.example.com, https://admin.example.com ,"
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.CORSOriginList())
}
