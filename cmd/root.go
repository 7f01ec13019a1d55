package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pcobb/galvan/internal/config"
	"github.com/pcobb/galvan/internal/domain/gates"
	"github.com/pcobb/galvan/internal/log"
	"github.com/pcobb/galvan/internal/ui/palette"
	"github.com/pcobb/galvan/internal/ui/styles"
	"github.com/pcobb/galvan/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "galvan",
	Short:   "A terminal palette for circuit components",
	Long:    `A terminal user interface for browsing a circuit component catalog, placing components, and editing their properties interactively.`,
	Version: version,
	RunE:    runPalette,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/galvan/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"write debug logs to galvan-debug.log")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic reload when the config file changes")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce_ms", defaults.AutoReloadDebounceMs)
	viper.SetDefault("ui.group_by_category", defaults.UI.GroupByCategory)
	viper.SetDefault("ui.show_pin_names", defaults.UI.ShowPinNames)
	viper.SetDefault("ui.show_descriptions", defaults.UI.ShowDescriptions)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .galvan/config.yaml (current directory)
		// 2. ~/.config/galvan/config.yaml (user config)
		if _, err := os.Stat(".galvan/config.yaml"); err == nil {
			viper.SetConfigFile(".galvan/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "galvan"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .galvan/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".galvan/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// loadConfig re-reads the config file for auto-reload.
func loadConfig() config.Config {
	fresh := config.Defaults()
	if err := viper.ReadInConfig(); err != nil {
		log.ErrorErr(log.CatConfig, "Reload failed, keeping previous config", err)
		return cfg
	}
	if err := viper.Unmarshal(&fresh); err != nil {
		log.ErrorErr(log.CatConfig, "Reload unmarshal failed, keeping previous config", err)
		return cfg
	}
	cfg = fresh
	return cfg
}

func runPalette(cmd *cobra.Command, args []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cleanup, err := log.InitWithTeaLog("galvan-debug.log", "galvan")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	} else if os.Getenv("GALVAN_DEBUG") != "" {
		cleanup, err := log.Init("galvan-debug.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}

	styles.ApplyTheme(cfg.Theme)

	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = ".galvan/config.yaml"
	}

	model := palette.New(gates.Catalog(), cfg).WithConfigPath(configFilePath)

	var w *watcher.Watcher
	if cfg.AutoReload {
		debounce := time.Duration(cfg.AutoReloadDebounceMs) * time.Millisecond
		var changes <-chan struct{}
		w, changes = setupWatcher(configFilePath, debounce)
		if changes != nil {
			model = model.WithAutoReload(changes, loadConfig)
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	if w != nil {
		if closeErr := w.Stop(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// setupWatcher starts a config file watcher. A failure (e.g. the config
// directory was never created) disables auto-reload for this run rather than
// aborting startup; both return values are nil in that case.
func setupWatcher(configPath string, debounce time.Duration) (*watcher.Watcher, <-chan struct{}) {
	wcfg := watcher.DefaultConfig(configPath)
	wcfg.DebounceDur = debounce

	w, err := watcher.New(wcfg)
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Auto-reload disabled", err, "path", configPath)
		return nil, nil
	}
	changes, err := w.Start()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Auto-reload disabled", err, "path", configPath)
		_ = w.Stop()
		return nil, nil
	}
	return w, changes
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
