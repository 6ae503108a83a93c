package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so the host env does not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "LOG_LEVEL",
		"SERVER_ADDR", "SERVER_PUBLIC_URL", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"SMTP_HOST", "SMTP_PORT", "SMTP_SECURE", "SMTP_INSECURE_SKIP_VERIFY",
		"METRICS_ENABLED",
	} {
		t.Setenv(k, "")
	}
	for _, k := range []string{EnvMailService, EnvMailUser, EnvMailPass, EnvMailSenderEmail} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ":3001", c.Server.Addr)
	assert.Equal(t, "http://localhost:3001", c.Server.PublicURL)
	assert.Equal(t, 10*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, c.Server.WriteTimeout)
	assert.Equal(t, 15*time.Second, c.Server.ShutdownTimeout)
	assert.True(t, c.MetricsEnabled())

	// Mail sin defaults
	assert.Empty(t, c.Mail.Service)
	assert.Empty(t, c.Mail.User)
	assert.Empty(t, c.Mail.Pass)
	assert.Empty(t, c.Mail.SenderEmail)
}

func TestLoad_MailFromEnvIsOpaque(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMailService, "gmail")
	t.Setenv(EnvMailUser, "not an email")
	t.Setenv(EnvMailPass, " app pass with spaces ")
	t.Setenv(EnvMailSenderEmail, "Mentoring <noreply@example.com>")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gmail", c.Mail.Service)
	assert.Equal(t, "not an email", c.Mail.User)
	assert.Equal(t, " app pass with spaces ", c.Mail.Pass)
	assert.Equal(t, "Mentoring <noreply@example.com>", c.Mail.SenderEmail)
}

func TestLoad_YAMLThenEnvOverrides(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "mailcheck.yaml")
	yml := `
app:
  app_env: prod
log:
  level: debug
server:
  addr: ":8080"
  read_timeout: 5s
mail:
  service: outlook
  host: smtp.internal
  port: 2525
metrics:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv(EnvMailService, "gmail")
	t.Setenv("SMTP_SECURE", "true")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", c.App.Env)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "127.0.0.1:9090", c.Server.Addr)
	assert.Equal(t, "http://localhost:9090", c.Server.PublicURL)
	assert.Equal(t, 5*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, "gmail", c.Mail.Service)
	assert.Equal(t, "smtp.internal", c.Mail.Host)
	assert.Equal(t, 2525, c.Mail.Port)
	assert.True(t, c.Mail.Secure)
	assert.False(t, c.MetricsEnabled())
}

func TestLoad_PublicURLTrimmed(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PUBLIC_URL", "https://probe.example.com/")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://probe.example.com", c.Server.PublicURL)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	t.Setenv("SMTP_PORT", "70000")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail.port")
}

func TestPublicURLFromAddr(t *testing.T) {
	tests := map[string]string{
		":3001":          "http://localhost:3001",
		"0.0.0.0:8080":   "http://localhost:8080",
		"[::1]:4000":     "http://localhost:4000",
		"no-port-at-all": "http://localhost",
	}
	for addr, want := range tests {
		assert.Equal(t, want, publicURLFromAddr(addr), addr)
	}
}
