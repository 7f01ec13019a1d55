// Package config provides configuration types, defaults, and persistence for galvan.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pcobb/galvan/internal/log"
)

// UIConfig holds palette user interface options.
type UIConfig struct {
	// GroupByCategory renders the catalog grouped under category headers.
	GroupByCategory bool `mapstructure:"group_by_category"`

	// ShowPinNames includes pin names in the shape detail pane.
	ShowPinNames bool `mapstructure:"show_pin_names"`

	// ShowDescriptions includes component descriptions in the list.
	ShowDescriptions bool `mapstructure:"show_descriptions"`
}

// ThemeConfig holds color customization options.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"` // hex color e.g. "#7D56F4"
	Subtle    string `mapstructure:"subtle"`    // hex color e.g. "#6C7086"
	Error     string `mapstructure:"error"`     // hex color e.g. "#F38BA8"
	Success   string `mapstructure:"success"`   // hex color e.g. "#A6E3A1"
}

// Config holds all configuration options for galvan.
type Config struct {
	// AutoReload re-applies UI options when the config file changes.
	AutoReload bool `mapstructure:"auto_reload"`

	// AutoReloadDebounceMs is the watcher debounce interval in milliseconds.
	AutoReloadDebounceMs int `mapstructure:"auto_reload_debounce_ms"`

	UI    UIConfig    `mapstructure:"ui"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:           true,
		AutoReloadDebounceMs: 500,
		UI: UIConfig{
			GroupByCategory:  true,
			ShowPinNames:     true,
			ShowDescriptions: true,
		},
		Theme: ThemeConfig{
			Highlight: "#7D56F4",
			Subtle:    "#6C7086",
			Error:     "#F38BA8",
			Success:   "#A6E3A1",
		},
	}
}

// DefaultConfigTemplate returns the commented YAML written for new installs.
func DefaultConfigTemplate() string {
	return `# galvan configuration
# Lookup order: .galvan/config.yaml, then ~/.config/galvan/config.yaml

# Re-apply UI options when this file changes.
auto_reload: true
auto_reload_debounce_ms: 500

ui:
  group_by_category: true
  show_pin_names: true
  show_descriptions: true

theme:
  highlight: "#7D56F4"
  subtle: "#6C7086"
  error: "#F38BA8"
  success: "#A6E3A1"
`
}

// WriteDefaultConfig writes the default config template to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
