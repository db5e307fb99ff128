package config

import (
	"errors"
	"fmt"
	"time"
)

// ServerConfig holds all configuration for the server binary.
type ServerConfig struct {
	Database        DatabaseConfig      `yaml:"database"`
	HTTP            HTTPConfig          `yaml:"http"`
	Archive         ArchiveConfig       `yaml:"archive"`
	Observability   ObservabilityConfig `yaml:"observability"`
	ShutdownTimeout time.Duration       `yaml:"shutdown_timeout" env:"TASKS_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// HTTPConfig holds HTTP server configuration.
// Zero values fall back to the transport defaults.
type HTTPConfig struct {
	Host              string        `yaml:"host" env:"TASKS_HTTP_HOST"`
	Port              string        `yaml:"port" env:"TASKS_HTTP_PORT" env-default:"8081"`
	ReadTimeout       time.Duration `yaml:"read_timeout" env:"TASKS_HTTP_READ_TIMEOUT"`
	WriteTimeout      time.Duration `yaml:"write_timeout" env:"TASKS_HTTP_WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" env:"TASKS_HTTP_IDLE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"TASKS_HTTP_READ_HEADER_TIMEOUT"`
	MaxHeaderBytes    int           `yaml:"max_header_bytes" env:"TASKS_HTTP_MAX_HEADER_BYTES"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" env:"TASKS_HTTP_MAX_BODY_BYTES"`
}

// ErrInvalidPort is returned when the HTTP port is empty.
var ErrInvalidPort = errors.New("TASKS_HTTP_PORT must not be empty")

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	if c.Port == "" {
		return ErrInvalidPort
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("TASKS_HTTP_MAX_BODY_BYTES must not be negative: %d", c.MaxBodyBytes)
	}
	return nil
}

// LoadServerConfig loads and validates server configuration.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}

	if err := read(cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}

	if err := validateAll(&cfg.Database, &cfg.HTTP, &cfg.Archive); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}
