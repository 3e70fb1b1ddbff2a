package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("NOTIFICATION_SMTP_HOST", "smtp.nngc.test")
	t.Setenv("NOTIFICATION_SMTP_PORT", "2525")
	t.Setenv("NOTIFICATION_EMAIL_LINK_EXPIRY", "24 hours")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "notification-service", cfg.Service.Name)
	assert.Equal(t, 8083, cfg.Server.HTTP.Port)
	assert.Equal(t, 9083, cfg.Server.GRPC.Port)
	assert.Equal(t, "smtp.nngc.test", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "24 hours", cfg.Email.LinkExpiry)
	assert.Equal(t, "https://northernneckgarbage.com/login", cfg.Email.LoginURL)
	assert.Equal(t, "notification:email", cfg.Notification.Channel)
	assert.Equal(t, 30*time.Second, cfg.Redis.ConnectTimeout)
	assert.NotNil(t, cfg.Logger)
}
