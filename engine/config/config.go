package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load fills target from a YAML file and then applies environment overrides.
// Callers seed target with defaults first; fields absent from both sources keep them.
// An empty path skips the file and only environment variables are applied.
//
// Parameters:
//   - path: the YAML file to read, or "" to skip
//   - target: a pointer to the configuration struct
//
// Returns:
//   - error: a wrapped error if the file cannot be read or parsed, or the environment is invalid
func Load(path string, target any) error {
	if path != "" {
		if err := LoadFile(path, target); err != nil {
			return err
		}
	}
	return ParseEnv(target)
}

// LoadFile decodes a YAML file into target. Keys missing from the file leave target untouched.
//
// Parameters:
//   - path: the YAML file to read
//   - target: a pointer to the configuration struct
//
// Returns:
//   - error: a wrapped error if the file cannot be read or parsed
func LoadFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// LoadFileIfExists is LoadFile that treats a missing file as an empty one.
//
// Parameters:
//   - path: the YAML file to read
//   - target: a pointer to the configuration struct
//
// Returns:
//   - bool: true if the file existed and was applied
//   - error: a wrapped error if the file exists but cannot be read or parsed
func LoadFileIfExists(path string, target any) (bool, error) {
	if err := LoadFile(path, target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
