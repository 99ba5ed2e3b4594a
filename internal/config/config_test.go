package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIURL, EnvLogLevel, EnvLocale, EnvTimeout} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://localhost:8083/api/v1", cfg.APIURL)
	assert.Zero(t, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SSOMA_API_URL=http://api.test/v1\nSSOMA_LOCALE=en-US\n"), 0o600))
	t.Setenv(EnvLocale, "de-DE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.test/v1", cfg.APIURL)
	assert.Equal(t, "de-DE", cfg.Locale, "environment wins over .env")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Timeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvTimeout, "1500ms")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)

	t.Setenv(EnvTimeout, "soon")
	_, err = Load("")
	assert.ErrorContains(t, err, EnvTimeout)
}

func TestLoad_MalformedEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SSOMA_API_URL='unterminated\n"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.APIURL = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Locale = "!!"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}
