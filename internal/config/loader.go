package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// Load reads and parses the configuration from the specified path.
// Fields absent from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	if !fileExists(configPath) {
		return nil, errors.ConfigNotFoundError(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ConfigNotFound, "Failed to read configuration file").
			WithDetails(fmt.Sprintf("Path: %s", configPath)).
			WithSuggestion("Check file permissions and path")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, errors.ConfigInvalid, "Invalid YAML configuration").
			WithDetails(fmt.Sprintf("Parse error: %v", err)).
			WithSuggestions([]string{
				"Check YAML syntax",
				"Validate indentation",
				"Durations need a unit, e.g. typing_speed: 2ms",
			})
	}

	config.ConfigPath = configPath

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ConfigInvalid, "Configuration validation failed").
			WithDetails(err.Error()).
			WithSuggestion("Run 'seer config init --force' to start from defaults")
	}

	return config, nil
}

// LoadOrDefault loads configPath, falling back to defaults when it does not exist.
func LoadOrDefault(configPath string) (*Config, error) {
	if !fileExists(configPath) {
		config := DefaultConfig()
		config.ConfigPath = configPath
		return config, nil
	}
	return Load(configPath)
}

// Save writes the configuration to the specified path.
func Save(config *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.StorageWriteError(filepath.Dir(configPath), err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, errors.InternalError, "Failed to serialize configuration")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.StorageWriteError(configPath, err)
	}

	return nil
}
