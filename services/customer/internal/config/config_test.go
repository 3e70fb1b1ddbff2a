package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())
	t.Setenv("CUSTOMER_KEYCLOAK_REALM", "nngc-test")
	t.Setenv("CUSTOMER_TOKEN_SERVICE_URL", "http://token:8082")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "customer-service", cfg.Service.Name)
	assert.Equal(t, 8081, cfg.Server.HTTP.Port)
	assert.Equal(t, 9081, cfg.Server.GRPC.Port)
	assert.Equal(t, "nngc-test", cfg.Keycloak.Realm)
	assert.Equal(t, 30*time.Second, cfg.Keycloak.Timeout)
	assert.Equal(t, "http://token:8082", cfg.TokenService.URL)
	assert.Equal(t, "notification:email", cfg.Notification.Channel)
	assert.Equal(t, "nngc_customers", cfg.Database.Name)
	assert.NotNil(t, cfg.Logger)
}

func TestFrontendURL(t *testing.T) {
	cfg := &Config{}
	cfg.Frontend.URL = "http://localhost:3000"
	cfg.Frontend.ProductionURL = "https://nngc.example"

	for env, want := range map[string]string{
		"dev":        "http://localhost:3000",
		"prod":       "https://nngc.example",
		"production": "https://nngc.example",
	} {
		cfg.Env = env
		assert.Equal(t, want, cfg.FrontendURL(), env)
	}
}
