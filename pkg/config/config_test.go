package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromConfigPath(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
service:
  name: token
server:
  port: "8082"
token:
  ttl: 45m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.yaml"), content, 0o644))

	t.Setenv("CONFIG_PATH", dir)
	t.Setenv("APP_ENV", "test")
	t.Setenv("TOKEN_SERVER_PORT", "9999")

	cfg, err := Load("token")
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.GetString("service.name"))
	assert.Equal(t, "9999", cfg.GetString("server.port"))
	assert.Equal(t, 45*time.Minute, cfg.GetDuration("token.ttl"))
	assert.Equal(t, "test", cfg.Env())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("NOTIFICATION_SMTP_HOST", "mail.internal")

	cfg, err := Load("notification", WithDefaults(map[string]interface{}{
		"smtp.host": "localhost",
		"smtp.port": 1025,
	}))
	require.NoError(t, err)

	assert.Equal(t, "mail.internal", cfg.GetString("smtp.host"))
	assert.Equal(t, 1025, cfg.GetInt("smtp.port"))
	assert.Equal(t, "dev", cfg.Env())
}

func TestLoadWithoutFileOrDefaultsFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	_, err := Load("missing-service")
	assert.Error(t, err)
}
