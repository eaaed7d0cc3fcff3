package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePopover(config)...)
	validationErrors = append(validationErrors, validateSnap(config)...)
	validationErrors = append(validationErrors, validateVault(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateTUI(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePopover(config *Config) []string {
	var validationErrors []string
	p := config.Popover

	switch p.DefaultMode {
	case PopoverModeMatch, PopoverModePreview, PopoverModeSource:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"popover.default_mode must be one of: match, preview, source (got: %s)", p.DefaultMode,
		))
	}
	if p.InitialWidth < 1 || p.InitialHeight < 1 {
		validationErrors = append(validationErrors, "popover.initial_width and popover.initial_height must be positive")
	}
	if p.MinWidth < 1 {
		validationErrors = append(validationErrors, "popover.min_width must be positive")
	}
	if p.ReflowShrink < 1 {
		validationErrors = append(validationErrors, "popover.reflow_shrink must be at least 1.0")
	}
	if p.PagedWidth < 1 || p.PagedHeight < 1 {
		validationErrors = append(validationErrors, "popover.paged_width and popover.paged_height must be positive")
	}

	delays := []struct {
		key   string
		value int
	}{
		{"popover.trigger_delay_ms", p.TriggerDelayMs},
		{"popover.close_delay_ms", p.CloseDelayMs},
		{"popover.settle_delay_ms", p.SettleDelayMs},
		{"popover.recency_grace_ms", p.RecencyGraceMs},
		{"popover.create_focus_delay_ms", p.CreateFocusDelayMs},
	}
	for _, d := range delays {
		if d.value < 0 {
			validationErrors = append(validationErrors, d.key+" must be non-negative")
		}
	}
	return validationErrors
}

func validateSnap(config *Config) []string {
	var validationErrors []string
	s := config.Popover.Snap
	if s.EdgeDistance < 1 {
		validationErrors = append(validationErrors, "popover.snap.edge_distance must be positive")
	}
	if s.TopDistance < 1 {
		validationErrors = append(validationErrors, "popover.snap.top_distance must be positive")
	}
	if s.UnsnapThreshold <= s.TopDistance {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"popover.snap.unsnap_threshold (%d) must be greater than popover.snap.top_distance (%d)",
			s.UnsnapThreshold, s.TopDistance,
		))
	}
	return validationErrors
}

func validateVault(config *Config) []string {
	switch config.Vault.NewFileLocation {
	case NewFileBesideSource, NewFileVaultRoot:
		return nil
	default:
		return []string{fmt.Sprintf(
			"vault.new_file_location must be one of: source, root (got: %s)", config.Vault.NewFileLocation,
		)}
	}
}

func validateDatabase(config *Config) []string {
	if config.Database.RecentLimit < 1 {
		return []string{"database.recent_limit must be positive"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateTUI(config *Config) []string {
	var validationErrors []string
	if config.TUI.CellWidth < 1 || config.TUI.CellHeight < 1 {
		validationErrors = append(validationErrors, "tui.cell_width and tui.cell_height must be positive")
	}
	switch config.TUI.MarkdownStyle {
	case "auto", "dark", "light", "notty":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"tui.markdown_style must be one of: auto, dark, light, notty (got: %s)", config.TUI.MarkdownStyle,
		))
	}
	return validationErrors
}
