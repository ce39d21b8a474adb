// Package config provides YAML-based configuration for the seer shell.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
)

// CurrentVersion is written to new configuration files.
const CurrentVersion = "1.0"

// Backends accepted by display.backend.
const (
	BackendScreen = "screen"
	BackendStream = "stream"
)

// Config represents the complete seer configuration.
type Config struct {
	ConfigVersion string        `yaml:"config_version,omitempty" json:"config_version,omitempty"`
	General       GeneralConfig `yaml:"general" json:"general"`
	Display       DisplayConfig `yaml:"display" json:"display"`
	Keys          KeysConfig    `yaml:"keys" json:"keys"`
	Menus         MenusConfig   `yaml:"menus" json:"menus"`

	ConfigPath string `yaml:"-" json:"-"`
}

// GeneralConfig holds storage and logging settings.
type GeneralConfig struct {
	// Directory holding Data/users.json and Data/readings.json
	DataDir string `yaml:"data_dir" json:"data_dir"`
	// Empty means <data_dir>/seer.log
	LogFile  string `yaml:"log_file" json:"log_file"`
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DisplayConfig controls how menus are drawn.
type DisplayConfig struct {
	Backend     string        `yaml:"backend" json:"backend"`
	Prefix      string        `yaml:"prefix" json:"prefix"`
	TypingSpeed time.Duration `yaml:"typing_speed" json:"typing_speed"`
}

// KeysConfig lists key names per navigation action, spelled like "up", "k", "ctrl+c".
type KeysConfig struct {
	Up     []string `yaml:"up" json:"up"`
	Down   []string `yaml:"down" json:"down"`
	Select []string `yaml:"select" json:"select"`
	Cancel []string `yaml:"cancel" json:"cancel"`
}

// MenusConfig tunes menu behaviour.
type MenusConfig struct {
	// Ask before leaving the main menu on Escape
	ConfirmOnEscape bool `yaml:"confirm_on_escape" json:"confirm_on_escape"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: CurrentVersion,
		General: GeneralConfig{
			DataDir:  defaultDataDir(),
			LogLevel: "info",
		},
		Display: DisplayConfig{
			Backend:     BackendScreen,
			Prefix:      "-> ",
			TypingSpeed: time.Millisecond,
		},
		Keys: KeysConfig{
			Up:     []string{"up", "k"},
			Down:   []string{"down", "j"},
			Select: []string{"enter"},
			Cancel: []string{"esc", "ctrl+c"},
		},
		Menus: MenusConfig{
			ConfirmOnEscape: true,
		},
	}
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "seer")
	}
	return filepath.Join("~", ".local", "share", "seer")
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// FindConfigPath locates the configuration file using standard locations.
func FindConfigPath() (string, error) {
	// Priority order:
	// 1. $SEER_CONFIG
	// 2. $XDG_CONFIG_HOME/seer/config.yml
	// 3. $HOME/.config/seer/config.yml
	if path := os.Getenv("SEER_CONFIG"); path != "" {
		return path, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, errors.ConfigNotFound, "Unable to determine home directory")
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "seer", "config.yml"), nil
}

// ExpandPath resolves a leading "~" against the home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DataDir returns the expanded data directory. $SEER_DATA_DIR wins over the file.
func (c *Config) DataDir() string {
	if dir := os.Getenv("SEER_DATA_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	return ExpandPath(c.General.DataDir)
}

// LogFile returns the log path, defaulting into the data directory.
func (c *Config) LogFile() string {
	if c.General.LogFile != "" {
		return ExpandPath(c.General.LogFile)
	}
	return filepath.Join(c.DataDir(), "seer.log")
}

// LogLevel parses general.log_level. Validate reports bad values.
func (c *Config) LogLevel() output.LogLevel {
	level, _ := output.ParseLogLevel(c.General.LogLevel)
	return level
}

// Validate performs comprehensive validation on the configuration.
func (c *Config) Validate() error {
	var validationErrors []ValidationError

	if strings.TrimSpace(c.General.DataDir) == "" && os.Getenv("SEER_DATA_DIR") == "" {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "general.data_dir",
			Value:   c.General.DataDir,
			Message: "data directory is required",
		})
	}

	if _, err := output.ParseLogLevel(c.General.LogLevel); err != nil {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "general.log_level",
			Value:   c.General.LogLevel,
			Message: "must be one of trace, debug, info, warn, error",
		})
	}

	if !slices.Contains([]string{BackendScreen, BackendStream}, c.Display.Backend) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "display.backend",
			Value:   c.Display.Backend,
			Message: fmt.Sprintf("must be %q or %q", BackendScreen, BackendStream),
		})
	}

	if c.Display.Prefix == "" {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "display.prefix",
			Value:   c.Display.Prefix,
			Message: "hover prefix cannot be empty",
		})
	}

	if c.Display.TypingSpeed < 0 || c.Display.TypingSpeed > time.Second {
		validationErrors = append(validationErrors, ValidationError{
			Field:   "display.typing_speed",
			Value:   c.Display.TypingSpeed.String(),
			Message: "must be between 0 and 1s",
		})
	}

	bindings := map[string][]string{
		"keys.up":     c.Keys.Up,
		"keys.down":   c.Keys.Down,
		"keys.select": c.Keys.Select,
		"keys.cancel": c.Keys.Cancel,
	}
	seen := make(map[string]string)
	for _, field := range []string{"keys.up", "keys.down", "keys.select", "keys.cancel"} {
		if len(bindings[field]) == 0 {
			validationErrors = append(validationErrors, ValidationError{
				Field:   field,
				Value:   "[]",
				Message: "at least one key is required",
			})
		}
		for _, k := range bindings[field] {
			if other, dup := seen[k]; dup {
				validationErrors = append(validationErrors, ValidationError{
					Field:   field,
					Value:   k,
					Message: fmt.Sprintf("key already bound by %s", other),
				})
				continue
			}
			seen[k] = field
		}
	}

	if len(validationErrors) > 0 {
		return &ValidationErrors{Errors: validationErrors}
	}
	return nil
}
