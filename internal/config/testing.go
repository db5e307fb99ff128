package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// ErrTestDSNRequired is returned when PostgreSQL integration tests have no database.
var ErrTestDSNRequired = errors.New("TASKS_TEST_DB_DSN is required")

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	DSN string `env:"TASKS_TEST_DB_DSN"`
}

// LoadTestConfig loads test configuration from the environment.
func LoadTestConfig() (*TestConfig, error) {
	cfg := &TestConfig{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load test config: %w", err)
	}
	if cfg.DSN == "" {
		return nil, ErrTestDSNRequired
	}

	return cfg, nil
}
