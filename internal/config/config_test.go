package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":4002", cfg.HTTPAddr)
	assert.Equal(t, "landing.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, 10.0, cfg.FormRate)
	assert.Equal(t, 5, cfg.FormBurst)
	assert.Equal(t, 60.0, cfg.DraftRate)
	assert.Equal(t, 20, cfg.DraftBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SecureCookies)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LANDING_TEST_FROM_FILE=1\nMAILGUN_DOMAIN=mg.example.com\n"), 0o600))
	t.Setenv("MAILGUN_DOMAIN", "")
	os.Unsetenv("MAILGUN_DOMAIN")
	t.Setenv("LANDING_SALES_EMAIL", "sales@example.com")
	t.Setenv("LANDING_HTTP_ADDR", "127.0.0.1:9000")
	t.Cleanup(func() {
		os.Unsetenv("LANDING_TEST_FROM_FILE")
		os.Unsetenv("MAILGUN_DOMAIN")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mg.example.com", cfg.Mailgun.Domain)
	assert.Equal(t, "sales@example.com", cfg.Mailgun.SalesEmail)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]string{
		"LANDING_FORM_RATE":        "0",
		"LANDING_FORM_BURST":       "0",
		"LANDING_DRAFT_RATE":       "-1",
		"LANDING_DRAFT_BURST":      "0",
		"LANDING_LOG_FORMAT":       "xml",
		"LANDING_SESSION_LIFETIME": "-1h",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	fs := flag.NewFlagSet("landing", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-addr", ":8080", "-db", "/tmp/x.db"}))
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
}
