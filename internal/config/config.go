package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Database  DatabaseConfig
	Redis     RedisConfig
	API       APIConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"customers"`
	Password string `envconfig:"DB_PASSWORD" default:"customers"`
	DBName   string `envconfig:"DB_NAME" default:"customers"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
}

// RedisConfig holds Redis configuration. An empty URL disables the
// idempotency store.
type RedisConfig struct {
	URL            string        `envconfig:"REDIS_URL"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port           int           `envconfig:"API_PORT" default:"5000"`
	ReadTimeout    time.Duration `envconfig:"API_READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"35s"`
	RequestTimeout time.Duration `envconfig:"API_REQUEST_TIMEOUT" default:"30s"`
}

// LogConfig selects the slog handler and level
type LogConfig struct {
	Format string `envconfig:"LOG_FORMAT" default:"json"`
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
}

// CORSConfig holds the browser origins allowed to call the API
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// RateLimitConfig bounds requests per client IP
type RateLimitConfig struct {
	Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"300"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// PORT is honoured for platforms that inject it, unless API_PORT is set.
	if _, ok := os.LookupEnv("API_PORT"); !ok {
		if raw := os.Getenv("PORT"); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid PORT: %w", err)
			}
			cfg.API.Port = port
		}
	}

	if cfg.API.Port < 1 || cfg.API.Port > 65535 {
		return nil, fmt.Errorf("invalid API_PORT: %d", cfg.API.Port)
	}
	if cfg.RateLimit.Requests < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %d", cfg.RateLimit.Requests)
	}

	return &cfg, nil
}

// IsProduction returns true when the application runs in production
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// URL returns the database connection string in URL form
func (d *DatabaseConfig) URL() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
