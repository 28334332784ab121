// Package config loads the site settings from the environment.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
)

// Environment variables read by Load
const (
	EnvAddr         = "MIZAN_ADDR"
	EnvLogLevel     = "MIZAN_LOG_LEVEL"
	EnvDBPath       = "MIZAN_DB_PATH"
	EnvJWTSecret    = "MIZAN_JWT_SECRET"
	EnvSessionTTL   = "MIZAN_SESSION_TTL"
	EnvDefaultLang  = "MIZAN_DEFAULT_LANG"
	EnvDemoUser     = "MIZAN_DEMO_USER"
	EnvDemoPassword = "MIZAN_DEMO_PASSWORD"
	EnvDemoName     = "MIZAN_DEMO_FIRST_NAME"
)

// MinSecretLength is the minimum acceptable length for the JWT secret
const MinSecretLength = 32

const devSecret = "development-only-secret-do-not-use-in-production"

// Config holds everything the server needs at start-up.
type Config struct {
	Addr        string
	LogLevel    string
	DBPath      string // empty means an in-memory database
	JWTSecret   string
	SessionTTL  time.Duration
	DefaultLang string

	// Optional account created at start-up so the member view can be reached
	DemoUser      string
	DemoPassword  string
	DemoFirstName string
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Addr:        ":8000",
		LogLevel:    "info",
		DBPath:      "./data/mizan.db",
		JWTSecret:   devSecret,
		SessionTTL:  30 * time.Minute,
		DefaultLang: "ar",
	}
}

// Load overlays environment variables on the defaults and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvJWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return cfg, serr.Wrap(err, "invalid session ttl "+v)
		}
		cfg.SessionTTL = ttl
	}
	if v := os.Getenv(EnvDefaultLang); v != "" {
		cfg.DefaultLang = strings.ToLower(v)
	}
	cfg.DemoUser = os.Getenv(EnvDemoUser)
	cfg.DemoPassword = os.Getenv(EnvDemoPassword)
	cfg.DemoFirstName = os.Getenv(EnvDemoName)

	return cfg, cfg.Validate()
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if c.Addr == "" {
		return serr.New("listen address is required")
	}
	if len(c.JWTSecret) < MinSecretLength {
		return serr.New("JWT secret must be at least 32 characters")
	}
	if c.SessionTTL <= 0 {
		return serr.New("session ttl must be positive")
	}
	switch c.DefaultLang {
	case "ar", "en":
	default:
		return serr.New("unsupported default language " + c.DefaultLang)
	}
	if c.DemoUser != "" && c.DemoPassword == "" {
		return serr.New("demo user requires a password")
	}
	return nil
}

// UsingDevSecret is true when no secret was supplied.
func (c Config) UsingDevSecret() bool {
	return c.JWTSecret == devSecret
}
