package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/hoverpane/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionPopover  = "Popover"
	SectionSnap     = "Snap"
	SectionVault    = "Vault"
	SectionDatabase = "Database"
	SectionLogging  = "Logging"
	SectionTUI      = "TUI"
)

// SchemaProvider documents every configuration key.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 40)
	keys = append(keys, p.getPopoverKeys(defaults)...)
	keys = append(keys, p.getSnapKeys(defaults)...)
	keys = append(keys, p.getVaultKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getTUIKeys(defaults)...)

	for i := range keys {
		k := &keys[i]
		k.Env = envOverrides[k.Key]
		if k.Env == "" {
			k.Env = entity.ConfigEnvVar(k.Key)
		}
		// The running host re-reads panel options only.
		k.Live = k.Section == SectionPopover || k.Section == SectionSnap
	}
	return keys
}

// envOverrides lists keys bound to a shorter variable in NewManager.
var envOverrides = map[string]string{
	"logging.level":  "HOVERPANE_LOG_LEVEL",
	"logging.format": "HOVERPANE_LOG_FORMAT",
}

func intKey(key string, def int, desc, rng, section string) entity.ConfigKeyInfo {
	return entity.ConfigKeyInfo{Key: key, Type: "int", Default: strconv.Itoa(def), Description: desc, Range: rng, Section: section}
}

func boolKey(key string, def bool, desc, section string) entity.ConfigKeyInfo {
	return entity.ConfigKeyInfo{Key: key, Type: "bool", Default: strconv.FormatBool(def), Description: desc, Section: section}
}

func (*SchemaProvider) getPopoverKeys(defaults *Config) []entity.ConfigKeyInfo {
	p := defaults.Popover
	return []entity.ConfigKeyInfo{
		intKey("popover.initial_width", p.InitialWidth, "Width of a new panel in pixels", ">=1", SectionPopover),
		intKey("popover.initial_height", p.InitialHeight, "Height of a new panel in pixels", ">=1", SectionPopover),
		{
			Key:         "popover.default_mode",
			Type:        "string",
			Default:     string(p.DefaultMode),
			Description: "View mode for opened content; match follows the hovered view",
			Values:      []string{"match", "preview", "source"},
			Section:     SectionPopover,
		},
		boolKey("popover.auto_focus", p.AutoFocus, "Focus opened content", SectionPopover),
		boolKey("popover.snap_to_edges", p.SnapToEdges, "Snap dragged panels to the left, right and top edges", SectionPopover),
		intKey("popover.trigger_delay_ms", p.TriggerDelayMs, "Hover time before a panel shows", ">=0", SectionPopover),
		intKey("popover.close_delay_ms", p.CloseDelayMs, "Grace time before a shown panel hides", ">=0", SectionPopover),
		intKey("popover.min_width", p.MinWidth, "Minimum panel width in pixels", ">=1", SectionPopover),
		{
			Key:         "popover.reflow_shrink",
			Type:        "float64",
			Default:     fmt.Sprintf("%.1f", p.ReflowShrink),
			Description: "Viewport divisor bounding programmatic resizes",
			Range:       ">=1.0",
			Section:     SectionPopover,
		},
		intKey("popover.paged_width", p.PagedWidth, "Panel width for paged documents", ">=1", SectionPopover),
		intKey("popover.paged_height", p.PagedHeight, "Panel height for paged documents", ">=1", SectionPopover),
		intKey("popover.settle_delay_ms", p.SettleDelayMs, "Delay before editor state is applied in source mode", ">=0", SectionPopover),
		intKey("popover.recency_grace_ms", p.RecencyGraceMs, "Time a focused preview stays out of the recent list", ">=0", SectionPopover),
		intKey("popover.create_focus_delay_ms", p.CreateFocusDelayMs, "Delay before the create action takes focus", ">=0", SectionPopover),
	}
}

func (*SchemaProvider) getSnapKeys(defaults *Config) []entity.ConfigKeyInfo {
	s := defaults.Popover.Snap
	return []entity.ConfigKeyInfo{
		intKey("popover.snap.edge_distance", s.EdgeDistance, "Pointer distance from the left or right edge that snaps", ">=1", SectionSnap),
		intKey("popover.snap.top_distance", s.TopDistance, "Pointer distance from the top that fills the viewport", ">=1", SectionSnap),
		intKey("popover.snap.unsnap_threshold", s.UnsnapThreshold, "Pointer y a snapped panel must pass to restore", ">top_distance", SectionSnap),
	}
}

func (*SchemaProvider) getVaultKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "vault.root", Type: "string", Default: defaults.Vault.Root, Description: "Vault directory (working directory when empty)", Section: SectionVault},
		{
			Key:         "vault.new_file_location",
			Type:        "string",
			Default:     string(defaults.Vault.NewFileLocation),
			Description: "Where content created from a missing link goes",
			Values:      []string{"source", "root"},
			Section:     SectionVault,
		},
		boolKey("vault.watch", defaults.Vault.Watch, "Invalidate cached metadata when files change", SectionVault),
	}
}

func (*SchemaProvider) getDatabaseKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "database.path", Type: "string", Default: "", Description: "SQLite file (XDG data dir when empty)", Section: SectionDatabase},
		intKey("database.recent_limit", defaults.Database.RecentLimit, "Entries kept in the recent list", ">=1", SectionDatabase),
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Logging
	return []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: l.Level, Description: "Minimum log level", Values: []string{"trace", "debug", "info", "warn", "error"}, Section: SectionLogging},
		{Key: "logging.format", Type: "string", Default: l.Format, Description: "Log output format", Values: []string{"console", "json"}, Section: SectionLogging},
		{Key: "logging.file", Type: "string", Default: l.File, Description: "Log file used while the terminal host runs", Section: SectionLogging},
		intKey("logging.max_size_mb", l.MaxSizeMB, "Rotate the log file past this size", ">=1", SectionLogging),
		intKey("logging.max_backups", l.MaxBackups, "Rotated files to keep", ">=0", SectionLogging),
		intKey("logging.max_age_days", l.MaxAgeDays, "Delete rotated files older than this", ">=0", SectionLogging),
		boolKey("logging.compress", l.Compress, "Gzip rotated files", SectionLogging),
	}
}

func (*SchemaProvider) getTUIKeys(defaults *Config) []entity.ConfigKeyInfo {
	t := defaults.TUI
	return []entity.ConfigKeyInfo{
		intKey("tui.cell_width", t.CellWidth, "Pixels per terminal column", ">=1", SectionTUI),
		intKey("tui.cell_height", t.CellHeight, "Pixels per terminal row", ">=1", SectionTUI),
		{Key: "tui.markdown_style", Type: "string", Default: t.MarkdownStyle, Description: "Markdown preview style", Values: []string{"auto", "dark", "light", "notty"}, Section: SectionTUI},
	}
}
