// Package config loads the runtime settings of the catalog server from the
// environment (and an optional .env file) on top of development defaults.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the catalog server.
type Config struct {
	DatabaseURL     string
	SQLitePath      string
	Host            string
	Port            int
	CORSOrigins     []string
	JWTSecret       string
	// SecretGenerated is set when JWT_SECRET was unset and a random
	// per-process secret is used; tokens then die with the process.
	SecretGenerated bool
	TokenTTL        time.Duration
	TrustRoleHeader bool
	SeedDisabled    bool
	SeedFetchImages bool
	SeedImageURL    string
	LogLevel        string
	LogFormat       string
	GinMode         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseURL = ""
	c.SQLitePath = "data.sqlite"
	c.Host = "0.0.0.0"
	c.Port = 4000
	c.CORSOrigins = []string{"*"}
	c.JWTSecret = ""
	c.TokenTTL = 12 * time.Hour
	c.TrustRoleHeader = false
	c.SeedDisabled = false
	c.SeedFetchImages = false
	c.SeedImageURL = "https://picsum.photos/800/600?random=%d"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.GinMode = "release"
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load applies defaults, then the .env file if present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.ensureSecret(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	if v, ok := lookup("DATABASE_URL"); ok {
		c.DatabaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup("SQLITE_PATH"); ok && v != "" {
		c.SQLitePath = v
	}
	if v, ok := lookup("SERVER_HOST"); ok && v != "" {
		c.Host = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid PORT %q", v)
		}
		c.Port = port
	}
	if v, ok := lookup("CORS_ORIGIN"); ok && v != "" {
		c.CORSOrigins = splitOrigins(v)
	}
	if v, ok := lookup("JWT_SECRET"); ok && v != "" {
		c.JWTSecret = v
	}
	if v, ok := lookup("TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		c.TokenTTL = d
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"TRUST_ROLE_HEADER", &c.TrustRoleHeader},
		{"SEED_DISABLE", &c.SeedDisabled},
		{"SEED_FETCH_IMAGES", &c.SeedFetchImages},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q", b.key, v)
		}
		*b.dst = parsed
	}
	if v, ok := lookup("SEED_IMAGE_URL"); ok && v != "" {
		c.SeedImageURL = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("GIN_MODE"); ok && v != "" {
		switch v {
		case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
			c.GinMode = v
		default:
			return fmt.Errorf("invalid GIN_MODE %q: must be %s, %s or %s", v, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
		}
	}
	return nil
}

// ensureSecret generates a random signing secret when none is configured, so
// an unset JWT_SECRET never means a publicly known one.
func (c *Config) ensureSecret() error {
	if c.JWTSecret != "" {
		return nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate token secret: %w", err)
	}
	c.JWTSecret = hex.EncodeToString(buf)
	c.SecretGenerated = true
	return nil
}

// AllowAllOrigins reports whether CORS_ORIGIN was left as the wildcard.
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSOrigins) == 0 || (len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*")
}

func splitOrigins(v string) []string {
	if strings.TrimSpace(v) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
