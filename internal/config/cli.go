package config

import "fmt"

// CLIConfig holds configuration for the taskctl binary.
type CLIConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
}

// LoadCLIConfig loads and validates operator CLI configuration.
func LoadCLIConfig() (*CLIConfig, error) {
	cfg := &CLIConfig{}

	if err := read(cfg); err != nil {
		return nil, fmt.Errorf("failed to load cli config: %w", err)
	}

	if err := validateAll(&cfg.Database, &cfg.Archive); err != nil {
		return nil, fmt.Errorf("invalid cli config: %w", err)
	}

	return cfg, nil
}
