package config

// Default configuration constants
const (
	// Popover defaults
	defaultInitialWidth       = 400
	defaultInitialHeight      = 300
	defaultTriggerDelayMs     = 300
	defaultCloseDelayMs       = 600
	defaultMinWidth           = 40
	defaultReflowShrink       = 1.5
	defaultPagedWidth         = 600
	defaultPagedHeight        = 800
	defaultSettleDelayMs      = 100
	defaultRecencyGraceMs     = 1000
	defaultCreateFocusDelayMs = 200

	// Snap defaults, pixels
	defaultEdgeDistance    = 10
	defaultTopDistance     = 30
	defaultUnsnapThreshold = 60

	// Database defaults
	defaultRecentLimit = 50 // entries

	// Logging defaults
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7 // days

	// TUI defaults: a typical monospace cell
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// getDefaultLogFile returns the default log file, falls back to empty string on error
func getDefaultLogFile() string {
	logFile, err := GetLogFile()
	if err != nil {
		return ""
	}
	return logFile
}

// DefaultConfig returns the default configuration values for hoverpane.
func DefaultConfig() *Config {
	return &Config{
		Popover: PopoverConfig{
			InitialWidth:   defaultInitialWidth,
			InitialHeight:  defaultInitialHeight,
			DefaultMode:    PopoverModePreview,
			AutoFocus:      true,
			SnapToEdges:    true,
			TriggerDelayMs: defaultTriggerDelayMs,
			CloseDelayMs:   defaultCloseDelayMs,
			MinWidth:       defaultMinWidth,
			ReflowShrink:   defaultReflowShrink,
			Snap: SnapConfig{
				EdgeDistance:    defaultEdgeDistance,
				TopDistance:     defaultTopDistance,
				UnsnapThreshold: defaultUnsnapThreshold,
			},
			PagedWidth:         defaultPagedWidth,
			PagedHeight:        defaultPagedHeight,
			SettleDelayMs:      defaultSettleDelayMs,
			RecencyGraceMs:     defaultRecencyGraceMs,
			CreateFocusDelayMs: defaultCreateFocusDelayMs,
		},
		Vault: VaultConfig{
			NewFileLocation: NewFileBesideSource,
			Watch:           true,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
			RecentLimit: defaultRecentLimit,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			File:       getDefaultLogFile(),
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
			Compress:   true,
		},
		TUI: TUIConfig{
			CellWidth:     defaultCellWidth,
			CellHeight:    defaultCellHeight,
			MarkdownStyle: "auto",
		},
	}
}
