package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper() {
	viper.Reset()
}

// isolateHome points the user config directory at a fresh temp dir and
// returns the morsekit config directory inside it (not created).
func isolateHome(t *testing.T) (home, configDir string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	return home, filepath.Join(home, ".config", AppName)
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestInit_WithDefaults(t *testing.T) {
	resetViper()
	_, configDir := isolateHome(t)
	writeConfig(t, configDir, "config.yaml", DefaultConfig)

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"tree_file", ""},
		{"unknown_placeholder", "?"},
		{"uppercase", true},
		{"debug", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := viper.Get(tt.key)
			if got != tt.expected {
				t.Errorf("viper.Get(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestInit_CreatesConfigIfMissing(t *testing.T) {
	resetViper()
	_, configDir := isolateHome(t)

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Init() did not create config file at %s", configPath)
	}
}

func TestInit_ReadsLocalConfigFirst(t *testing.T) {
	resetViper()
	home, configDir := isolateHome(t)
	writeConfig(t, configDir, "config.yaml", `unknown_placeholder: "*"`)

	t.Chdir(home)
	writeConfig(t, home, "config.yaml", `unknown_placeholder: "#"`)

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := viper.GetString("unknown_placeholder"); got != "#" {
		t.Errorf("viper.GetString(unknown_placeholder) = %q, want %q (local config)", got, "#")
	}
}

func TestInit_DotConfigTakesPrecedence(t *testing.T) {
	resetViper()
	home, _ := isolateHome(t)

	t.Chdir(home)
	writeConfig(t, home, "config.yaml", "debug: false")
	writeConfig(t, home, ".config.yaml", "debug: true")

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if !viper.GetBool("debug") {
		t.Error("viper.GetBool(debug) = false, want true from .config.yaml")
	}
}

func TestInit_InvalidConfigFile(t *testing.T) {
	resetViper()
	_, configDir := isolateHome(t)
	writeConfig(t, configDir, "config.yaml", "invalid: yaml: content: [[[")

	if err := Init(); err == nil {
		t.Error("Init() should return error for invalid YAML")
	}
}

func TestGet_ReturnsSettings(t *testing.T) {
	resetViper()
	_, configDir := isolateHome(t)
	writeConfig(t, configDir, "config.yaml", "unknown_placeholder: \"~\"\nuppercase: false\ndebug: true\n")

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	s, err := Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if s.UnknownPlaceholder != "~" {
		t.Errorf("UnknownPlaceholder = %q, want %q", s.UnknownPlaceholder, "~")
	}
	if s.Placeholder() != '~' {
		t.Errorf("Placeholder() = %q, want %q", s.Placeholder(), '~')
	}
	if s.Uppercase {
		t.Error("Uppercase = true, want false")
	}
	if !s.Debug {
		t.Error("Debug = false, want true")
	}
	if s.TreeFile != "" {
		t.Errorf("TreeFile = %q, want empty", s.TreeFile)
	}
}

func TestGet_InvalidSettings(t *testing.T) {
	resetViper()
	_, configDir := isolateHome(t)
	writeConfig(t, configDir, "config.yaml", `unknown_placeholder: "??"`)

	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	_, err := Get()
	if err == nil {
		t.Fatal("Get() error = nil, want invalid config")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Get() error = %v, want it to mention invalid config", err)
	}
}

func TestEnsureConfigExists_CreatesDirectory(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "subdir", "config")

	if err := ensureConfigExists(configPath); err != nil {
		t.Fatalf("ensureConfigExists() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(configPath, "config.yaml"))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if string(content) != DefaultConfig {
		t.Errorf("config content does not match DefaultConfig")
	}
}

func TestEnsureConfigExists_DoesNotOverwrite(t *testing.T) {
	configPath := t.TempDir()
	existingContent := "debug: true"
	writeConfig(t, configPath, "config.yaml", existingContent)

	if err := ensureConfigExists(configPath); err != nil {
		t.Fatalf("ensureConfigExists() error = %v", err)
	}

	content, err := os.ReadFile(filepath.Join(configPath, "config.yaml"))
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if string(content) != existingContent {
		t.Errorf("ensureConfigExists() overwrote existing config")
	}
}

func TestEnsureConfigExists_WriteError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("skipping test when running as root")
	}

	configPath := filepath.Join(t.TempDir(), "readonly")
	if err := os.MkdirAll(configPath, 0555); err != nil {
		t.Fatalf("failed to create readonly dir: %v", err)
	}
	defer func() {
		if err := os.Chmod(configPath, 0755); err != nil {
			t.Logf("failed to restore permissions: %v", err)
		}
	}()

	if err := ensureConfigExists(filepath.Join(configPath, "subdir")); err == nil {
		t.Error("ensureConfigExists() should return error for read-only directory")
	}
}

func TestConstants(t *testing.T) {
	if AppName != "morsekit" {
		t.Errorf("AppName = %q, want %q", AppName, "morsekit")
	}
	if ConfigType != "yaml" {
		t.Errorf("ConfigType = %q, want %q", ConfigType, "yaml")
	}
}

func TestDefaultConfig_ContainsExpectedKeys(t *testing.T) {
	for _, key := range []string{"tree_file", "unknown_placeholder", "uppercase", "debug"} {
		if !strings.Contains(DefaultConfig, key+":") {
			t.Errorf("DefaultConfig missing key: %s", key)
		}
	}
}

func validSettings() *Settings {
	return &Settings{
		UnknownPlaceholder: "?",
		Uppercase:          true,
	}
}

func TestSettings_Validate_ValidSettings(t *testing.T) {
	if err := validSettings().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestSettings_Validate_Placeholder(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"?", false},
		{"*", false},
		{"¿", false},
		{"", true},
		{"??", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			s := validSettings()
			s.UnknownPlaceholder = tt.value
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() with unknown_placeholder=%q error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Validate_TreeFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tree.yaml")
	writeConfig(t, dir, "tree.yaml", `value: ""`)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"unset", "", false},
		{"existing file", file, false},
		{"missing file", filepath.Join(dir, "missing.yaml"), true},
		{"directory", dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			s.TreeFile = tt.path
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() with tree_file=%q error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Validate_MultipleErrors(t *testing.T) {
	s := validSettings()
	s.UnknownPlaceholder = ""
	s.TreeFile = filepath.Join(t.TempDir(), "missing.yaml")

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want errors")
	}
	for _, want := range []string{"unknown_placeholder", "tree_file"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error = %v, want it to mention %s", err, want)
		}
	}
}
