// Package config loads, validates and watches the hoverpane configuration
// with Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// HOVERPANE_VAULT_ROOT, HOVERPANE_POPOVER_DEFAULT_MODE, ...
	v.SetEnvPrefix(entity.ConfigEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envOverrides {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := finishConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// finishConfig fills dynamic defaults, normalizes and validates.
func finishConfig(config *Config) error {
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch mode := PopoverMode(strings.ToLower(strings.TrimSpace(string(config.Popover.DefaultMode)))); mode {
	case "":
		config.Popover.DefaultMode = PopoverModePreview
	default:
		config.Popover.DefaultMode = mode
	}

	switch loc := NewFileLocation(strings.ToLower(strings.TrimSpace(string(config.Vault.NewFileLocation)))); loc {
	case "":
		config.Vault.NewFileLocation = NewFileBesideSource
	default:
		config.Vault.NewFileLocation = loc
	}

	config.Vault.Root = expandHome(strings.TrimSpace(config.Vault.Root))
	config.Database.Path = expandHome(config.Database.Path)
	config.Logging.File = expandHome(config.Logging.File)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	if config.TUI.MarkdownStyle == "" {
		config.TUI.MarkdownStyle = "auto"
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the matching JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setPopoverDefaults(defaults)
	m.setVaultDefaults(defaults)
	m.setDatabaseDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setTUIDefaults(defaults)
}

func (m *Manager) setPopoverDefaults(defaults *Config) {
	p := defaults.Popover
	m.viper.SetDefault("popover.initial_width", p.InitialWidth)
	m.viper.SetDefault("popover.initial_height", p.InitialHeight)
	m.viper.SetDefault("popover.default_mode", string(p.DefaultMode))
	m.viper.SetDefault("popover.auto_focus", p.AutoFocus)
	m.viper.SetDefault("popover.snap_to_edges", p.SnapToEdges)
	m.viper.SetDefault("popover.trigger_delay_ms", p.TriggerDelayMs)
	m.viper.SetDefault("popover.close_delay_ms", p.CloseDelayMs)
	m.viper.SetDefault("popover.min_width", p.MinWidth)
	m.viper.SetDefault("popover.reflow_shrink", p.ReflowShrink)
	m.viper.SetDefault("popover.snap.edge_distance", p.Snap.EdgeDistance)
	m.viper.SetDefault("popover.snap.top_distance", p.Snap.TopDistance)
	m.viper.SetDefault("popover.snap.unsnap_threshold", p.Snap.UnsnapThreshold)
	m.viper.SetDefault("popover.paged_width", p.PagedWidth)
	m.viper.SetDefault("popover.paged_height", p.PagedHeight)
	m.viper.SetDefault("popover.settle_delay_ms", p.SettleDelayMs)
	m.viper.SetDefault("popover.recency_grace_ms", p.RecencyGraceMs)
	m.viper.SetDefault("popover.create_focus_delay_ms", p.CreateFocusDelayMs)
}

func (m *Manager) setVaultDefaults(defaults *Config) {
	m.viper.SetDefault("vault.root", defaults.Vault.Root)
	m.viper.SetDefault("vault.new_file_location", string(defaults.Vault.NewFileLocation))
	m.viper.SetDefault("vault.watch", defaults.Vault.Watch)
}

func (m *Manager) setDatabaseDefaults(defaults *Config) {
	m.viper.SetDefault("database.recent_limit", defaults.Database.RecentLimit)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setTUIDefaults(defaults *Config) {
	m.viper.SetDefault("tui.cell_width", defaults.TUI.CellWidth)
	m.viper.SetDefault("tui.cell_height", defaults.TUI.CellHeight)
	m.viper.SetDefault("tui.markdown_style", defaults.TUI.MarkdownStyle)
}
