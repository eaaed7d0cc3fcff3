package config

import "time"

// Config represents the complete configuration for hoverpane.
type Config struct {
	// Popover controls floating panel behavior.
	Popover PopoverConfig `mapstructure:"popover" yaml:"popover" toml:"popover" json:"popover"`
	// Vault points at the content store panels preview.
	Vault    VaultConfig    `mapstructure:"vault" yaml:"vault" toml:"vault" json:"vault"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// TUI configures the terminal host.
	TUI TUIConfig `mapstructure:"tui" yaml:"tui" toml:"tui" json:"tui"`
}

// PopoverMode is the view mode a popover opens content in.
type PopoverMode string

const (
	PopoverModeMatch   PopoverMode = "match" // Follow the view the link was hovered in
	PopoverModePreview PopoverMode = "preview"
	PopoverModeSource  PopoverMode = "source"
)

// PopoverConfig controls floating panel behavior.
type PopoverConfig struct {
	InitialWidth  int `mapstructure:"initial_width" yaml:"initial_width" toml:"initial_width" json:"initial_width" jsonschema:"minimum=1"`
	InitialHeight int `mapstructure:"initial_height" yaml:"initial_height" toml:"initial_height" json:"initial_height" jsonschema:"minimum=1"`
	// DefaultMode is the view mode for opened content (match, preview, source).
	DefaultMode PopoverMode `mapstructure:"default_mode" yaml:"default_mode" toml:"default_mode" json:"default_mode" jsonschema:"enum=match,enum=preview,enum=source"`
	// AutoFocus focuses opened content instead of leaving focus on the anchor.
	AutoFocus   bool `mapstructure:"auto_focus" yaml:"auto_focus" toml:"auto_focus" json:"auto_focus"`
	SnapToEdges bool `mapstructure:"snap_to_edges" yaml:"snap_to_edges" toml:"snap_to_edges" json:"snap_to_edges"`

	// TriggerDelayMs is the hover time before a panel shows.
	TriggerDelayMs int `mapstructure:"trigger_delay_ms" yaml:"trigger_delay_ms" toml:"trigger_delay_ms" json:"trigger_delay_ms" jsonschema:"minimum=0"`
	// CloseDelayMs is the grace time before a shown panel hides after the pointer leaves.
	CloseDelayMs int `mapstructure:"close_delay_ms" yaml:"close_delay_ms" toml:"close_delay_ms" json:"close_delay_ms" jsonschema:"minimum=0"`

	MinWidth int `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=1"`
	// ReflowShrink divides the viewport for the max size of programmatic resizes.
	ReflowShrink float64    `mapstructure:"reflow_shrink" yaml:"reflow_shrink" toml:"reflow_shrink" json:"reflow_shrink" jsonschema:"minimum=1"`
	Snap         SnapConfig `mapstructure:"snap" yaml:"snap" toml:"snap" json:"snap"`

	PagedWidth  int `mapstructure:"paged_width" yaml:"paged_width" toml:"paged_width" json:"paged_width" jsonschema:"minimum=1"`
	PagedHeight int `mapstructure:"paged_height" yaml:"paged_height" toml:"paged_height" json:"paged_height" jsonschema:"minimum=1"`

	SettleDelayMs      int `mapstructure:"settle_delay_ms" yaml:"settle_delay_ms" toml:"settle_delay_ms" json:"settle_delay_ms" jsonschema:"minimum=0"`
	RecencyGraceMs     int `mapstructure:"recency_grace_ms" yaml:"recency_grace_ms" toml:"recency_grace_ms" json:"recency_grace_ms" jsonschema:"minimum=0"`
	CreateFocusDelayMs int `mapstructure:"create_focus_delay_ms" yaml:"create_focus_delay_ms" toml:"create_focus_delay_ms" json:"create_focus_delay_ms" jsonschema:"minimum=0"`
}

// SnapConfig holds the edge snap thresholds in pixels.
type SnapConfig struct {
	EdgeDistance    int `mapstructure:"edge_distance" yaml:"edge_distance" toml:"edge_distance" json:"edge_distance" jsonschema:"minimum=1"`
	TopDistance     int `mapstructure:"top_distance" yaml:"top_distance" toml:"top_distance" json:"top_distance" jsonschema:"minimum=1"`
	UnsnapThreshold int `mapstructure:"unsnap_threshold" yaml:"unsnap_threshold" toml:"unsnap_threshold" json:"unsnap_threshold" jsonschema:"minimum=1"`
}

func (p PopoverConfig) TriggerDelay() time.Duration { return ms(p.TriggerDelayMs) }
func (p PopoverConfig) CloseDelay() time.Duration   { return ms(p.CloseDelayMs) }
func (p PopoverConfig) SettleDelay() time.Duration  { return ms(p.SettleDelayMs) }
func (p PopoverConfig) RecencyGrace() time.Duration { return ms(p.RecencyGraceMs) }

func (p PopoverConfig) CreateFocusDelay() time.Duration {
	return ms(p.CreateFocusDelayMs)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// NewFileLocation selects where content created from a missing link goes.
type NewFileLocation string

const (
	NewFileBesideSource NewFileLocation = "source" // Folder of the linking document
	NewFileVaultRoot    NewFileLocation = "root"
)

// VaultConfig points at the content store.
type VaultConfig struct {
	// Root is the vault directory. Defaults to the working directory.
	Root            string          `mapstructure:"root" yaml:"root" toml:"root" json:"root"`
	NewFileLocation NewFileLocation `mapstructure:"new_file_location" yaml:"new_file_location" toml:"new_file_location" json:"new_file_location" jsonschema:"enum=source,enum=root"`
	// Watch invalidates cached metadata when files change on disk.
	Watch bool `mapstructure:"watch" yaml:"watch" toml:"watch" json:"watch"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path is set dynamically in Load when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// RecentLimit caps the recently opened list.
	RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit" toml:"recent_limit" json:"recent_limit" jsonschema:"minimum=1"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives log output while the terminal host owns the screen.
	File       string `mapstructure:"file" yaml:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// TUIConfig configures the terminal host.
type TUIConfig struct {
	// CellWidth and CellHeight map panel pixels to terminal cells.
	CellWidth  int `mapstructure:"cell_width" yaml:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"minimum=1"`
	CellHeight int `mapstructure:"cell_height" yaml:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"minimum=1"`
	// MarkdownStyle is the glamour style used for previews (auto, dark, light, notty).
	MarkdownStyle string `mapstructure:"markdown_style" yaml:"markdown_style" toml:"markdown_style" json:"markdown_style" jsonschema:"enum=auto,enum=dark,enum=light,enum=notty"`
}
