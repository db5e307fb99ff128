// Package config loads service configuration from an optional YAML file
// overlaid by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigFileEnv names the environment variable holding the YAML config path.
const ConfigFileEnv = "TASKS_CONFIG_FILE"

// validator is implemented by every config section.
type validator interface {
	Validate() error
}

// read fills cfg from the file named by TASKS_CONFIG_FILE, when set and
// present, and from the environment. Environment values win.
func read(cfg any) error {
	path := os.Getenv(ConfigFileEnv)
	if path == "" {
		return cleanenv.ReadEnv(cfg)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			return cleanenv.ReadEnv(cfg)
		}
		return fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return nil
}

// validateAll runs Validate on each section and joins the failures.
func validateAll(sections ...validator) error {
	var errs []error
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
