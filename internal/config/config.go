// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/viper"
)

const (
	AppName       = "morsekit"
	ConfigType    = "yaml"
	DefaultConfig = `# Morse Toolkit Configuration

# Translation tree
tree_file: ""              # YAML tree definition (empty = built-in ITU tree)

# Translation
unknown_placeholder: "?"   # Written in place of characters or codes that do not translate
uppercase: true            # Upper-case text before lookup

# Output
debug: false               # Enable debug output
`
)

// Settings holds all application configuration
type Settings struct {
	// Translation tree
	TreeFile string `mapstructure:"tree_file"`

	// Translation
	UnknownPlaceholder string `mapstructure:"unknown_placeholder"`
	Uppercase          bool   `mapstructure:"uppercase"`

	// Output
	Debug bool `mapstructure:"debug"`
}

// Init initializes Viper with defaults and config file.
// Config file search order: current directory, then ~/.config/morsekit/
func Init() error {
	viper.SetDefault("tree_file", "")
	viper.SetDefault("unknown_placeholder", "?")
	viper.SetDefault("uppercase", true)
	viper.SetDefault("debug", false)

	viper.SetConfigType(ConfigType)

	// Priority order: current directory first, then XDG config
	viper.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	viper.AddConfigPath(filepath.Join(configDir, AppName))

	// Try .config.yaml first (hidden file), then config.yaml
	viper.SetConfigName(".config")
	if err = viper.ReadInConfig(); err != nil {
		viper.SetConfigName("config")
		err = viper.ReadInConfig()
	}

	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config found - create default in ~/.config/morsekit/
			xdgConfigPath := filepath.Join(configDir, AppName)
			if err = ensureConfigExists(xdgConfigPath); err != nil {
				return err
			}
			if err = viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func ensureConfigExists(configPath string) error {
	configFile := filepath.Join(configPath, "config.yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err = os.MkdirAll(configPath, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err = os.WriteFile(configFile, []byte(DefaultConfig), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}
	return nil
}

// Get returns the current settings
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Placeholder returns the unknown placeholder as a rune.
// Only meaningful on validated settings.
func (s *Settings) Placeholder() rune {
	r, _ := utf8.DecodeRuneInString(s.UnknownPlaceholder)
	return r
}

// Validate checks that all settings are within acceptable ranges
func (s *Settings) Validate() error {
	var errs []error

	if utf8.RuneCountInString(s.UnknownPlaceholder) != 1 {
		errs = append(errs, fmt.Errorf("unknown_placeholder must be a single character, got %q", s.UnknownPlaceholder))
	}

	if s.TreeFile != "" {
		info, err := os.Stat(s.TreeFile)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("tree_file %q: %w", s.TreeFile, err))
		case info.IsDir():
			errs = append(errs, fmt.Errorf("tree_file %q is a directory", s.TreeFile))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
