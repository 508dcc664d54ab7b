package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/aussiebroadwan/inkwell/pkg/jwtx"
)

type Config struct {
	Issuer         string // Optional: issuer claim for tokens (default: inkwell)
	BootstrapToken string // Optional: token required to perform bootstrap

	SecretKey    string              // Optional: HS256 signing secret, at least 32 bytes
	SecretFile   string              // Optional: file holding the signing secret
	TokenTTL     time.Duration       // Access token lifetime (default: 30m)
	AuthorPolicy domain.AuthorPolicy // What happens to posts when their author is deleted (default: orphan)

	DatabaseFile        string        // Path to SQLite database file (default: ./inkwell.db)
	PepperFile          string        // Path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	RateLimits httpx.RateLimitProfiles
}

func LoadConfig() Config {
	return Config{
		Issuer:              getEnvOrDefault("INKWELL_ISSUER", "inkwell"),
		BootstrapToken:      os.Getenv("BOOTSTRAP_TOKEN"),
		SecretKey:           os.Getenv("INKWELL_SECRET_KEY"),
		SecretFile:          os.Getenv("INKWELL_SECRET_FILE"),
		TokenTTL:            getEnvDurationOrDefault("INKWELL_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		AuthorPolicy:        domain.AuthorPolicy(getEnvOrDefault("INKWELL_AUTHOR_POLICY", string(domain.AuthorOrphan))),
		DatabaseFile:        getEnvOrDefault("INKWELL_DATABASE_FILE", "inkwell.db"),
		PepperFile:          getEnvOrDefault("INKWELL_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RateLimits:          httpx.LoadRateLimitProfiles(),
	}
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	if _, err := domain.ParseAuthorPolicy(string(c.AuthorPolicy)); err != nil {
		return fmt.Errorf("INKWELL_AUTHOR_POLICY: %w", err)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("INKWELL_TOKEN_TTL: must be positive, got %s", c.TokenTTL)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT: out of range: %d", c.Port)
	}
	if c.SecretKey != "" && c.SecretFile != "" {
		return fmt.Errorf("INKWELL_SECRET_KEY and INKWELL_SECRET_FILE are mutually exclusive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
