package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Tally"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"tally"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// JWTSecret verifies bearer tokens issued by the identity provider.
		// When empty the owner is taken from the X-User-ID header as-is.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
		Issuer    string `envconfig:"AUTH_ISSUER"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Redis struct {
		Addr         string `envconfig:"REDIS_ADDR"`
		Password     string `envconfig:"REDIS_PASSWORD"`
		DB           int    `envconfig:"REDIS_DB" default:"0"`
		AuditChannel string `envconfig:"REDIS_AUDIT_CHANNEL" default:"tally.audit"`
	}

	Audit struct {
		Buffer int `envconfig:"AUDIT_BUFFER" default:"256"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// RedisEnabled reports whether audit events should be published to Redis.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Audit.Buffer <= 0 {
		return nil, fmt.Errorf("AUDIT_BUFFER must be positive, got %d", cfg.Audit.Buffer)
	}

	return &cfg, nil
}
