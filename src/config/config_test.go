package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) lookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.DatabaseURL)
	assert.Equal(t, "data.sqlite", c.SQLitePath)
	assert.Equal(t, "0.0.0.0:4000", c.Addr())
	assert.True(t, c.AllowAllOrigins())
	assert.Equal(t, 12*time.Hour, c.TokenTTL)
	assert.False(t, c.TrustRoleHeader)
	assert.False(t, c.SeedDisabled)
	assert.False(t, c.SeedFetchImages)
	assert.Empty(t, c.JWTSecret)
	assert.Equal(t, "release", c.GinMode)
}

func TestEnsureSecret(t *testing.T) {
	var a, b Config
	a.LoadDefaults()
	b.LoadDefaults()
	require.NoError(t, a.ensureSecret())
	require.NoError(t, b.ensureSecret())

	assert.True(t, a.SecretGenerated)
	assert.Len(t, a.JWTSecret, 64)
	assert.NotEqual(t, a.JWTSecret, b.JWTSecret)

	var c Config
	c.LoadDefaults()
	require.NoError(t, c.applyEnv(envMap(map[string]string{"JWT_SECRET": "configured"})))
	require.NoError(t, c.ensureSecret())
	assert.Equal(t, "configured", c.JWTSecret)
	assert.False(t, c.SecretGenerated)
}

func TestApplyEnv_GinMode(t *testing.T) {
	for _, mode := range []string{"debug", "release", "test"} {
		var c Config
		c.LoadDefaults()
		require.NoError(t, c.applyEnv(envMap(map[string]string{"GIN_MODE": mode})))
		assert.Equal(t, mode, c.GinMode)
	}
}

func TestApplyEnv(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := c.applyEnv(envMap(map[string]string{
		"DATABASE_URL":      " postgres://u:p@db:5432/catalog ",
		"PORT":              "8080",
		"CORS_ORIGIN":       "http://a.test, http://b.test,,",
		"TOKEN_TTL":         "30m",
		"TRUST_ROLE_HEADER": "true",
		"SEED_DISABLE":      "1",
		"LOG_LEVEL":         "DEBUG",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/catalog", c.DatabaseURL)
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins)
	assert.False(t, c.AllowAllOrigins())
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.True(t, c.TrustRoleHeader)
	assert.True(t, c.SeedDisabled)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port not a number", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "bad duration", env: map[string]string{"TOKEN_TTL": "soon"}},
		{name: "negative duration", env: map[string]string{"TOKEN_TTL": "-1h"}},
		{name: "bad bool", env: map[string]string{"SEED_DISABLE": "maybe"}},
		{name: "unknown gin mode", env: map[string]string{"GIN_MODE": "production"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			assert.Error(t, c.applyEnv(envMap(tt.env)))
		})
	}
}
