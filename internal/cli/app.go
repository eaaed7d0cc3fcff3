// Package cli wires configuration, storage and the vault for the hoverpane
// commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/build"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/domain/snap"
	"github.com/bnema/hoverpane/internal/infrastructure/config"
	"github.com/bnema/hoverpane/internal/infrastructure/desktop"
	"github.com/bnema/hoverpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/hoverpane/internal/infrastructure/recency"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/ui/component"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	BuildInfo  build.Info

	// mgr is nil when the config file could not be loaded.
	mgr *config.Manager

	// db opens on first use so commands that never touch the recent list
	// skip migrations.
	db *sqlite.LazyDB

	vaultOnce sync.Once
	vault     *vault.Vault
	vaultErr  error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg, cfgFile, mgr := loadConfig()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	logger.Debug().Str("config", cfgFile).Msg("configuration loaded")

	return &App{
		Config:     cfg,
		ConfigFile: cfgFile,
		Theme:      styles.NewTheme(),
		mgr:        mgr,
		db:         sqlite.NewRecentStore(cfg.Database.Path),
		ctx:        ctx,
	}, nil
}

// LogToFile redirects logging to the rotated log file. The terminal host
// calls it before taking over the screen.
func (a *App) LogToFile() error {
	l := a.Config.Logging
	if l.File == "" {
		return nil
	}
	rotator, err := logging.NewLogRotator(l.File, logging.RotatorOptions{
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger := logging.NewWithOutput(l.Level, l.Format, rotator)
	a.ctx = logging.WithContext(context.Background(), logger)
	prev := a.logCleanup
	a.logCleanup = func() {
		if prev != nil {
			prev()
		}
		_ = rotator.Close()
	}
	logger.Debug().Str("file", rotator.Path()).Msg("logging to file")
	return nil
}

// Vault opens the configured vault, or the working directory when no root
// is set.
func (a *App) Vault() (*vault.Vault, error) {
	a.vaultOnce.Do(func() {
		root := a.Config.Vault.Root
		if root == "" {
			var err error
			if root, err = os.Getwd(); err != nil {
				a.vaultErr = fmt.Errorf("resolve working directory: %w", err)
				return
			}
		}
		a.vault, a.vaultErr = vault.New(root, vault.Options{
			NewFilePlacement: string(a.Config.Vault.NewFileLocation),
		})
	})
	return a.vault, a.vaultErr
}

// Tracker returns the recent list backed by the database.
func (a *App) Tracker() (*recency.Tracker, error) {
	repo, err := a.db.Recent(a.ctx)
	if err != nil {
		return nil, err
	}
	return recency.NewTracker(repo, a.Config.Database.RecentLimit), nil
}

// Opener returns the external opener for vault content.
func (a *App) Opener() (*desktop.Opener, error) {
	v, err := a.Vault()
	if err != nil {
		return nil, err
	}
	return desktop.NewOpener(v.Root()), nil
}

// PopoverOptions converts the popover section into component options.
func (a *App) PopoverOptions() component.PopoverOptions {
	return PopoverOptionsFromConfig(a.Config.Popover)
}

// TriggerOptions returns the hover delays.
func (a *App) TriggerOptions() component.HoverTriggerOptions {
	return component.HoverTriggerOptions{
		WaitTime:   a.Config.Popover.TriggerDelay(),
		CloseDelay: a.Config.Popover.CloseDelay(),
	}
}

// PopoverOptionsFromConfig maps configuration onto popover options, keeping
// the stock grip width.
func PopoverOptionsFromConfig(p config.PopoverConfig) component.PopoverOptions {
	opts := component.DefaultPopoverOptions()
	opts.InitialSize = entity.Size{W: p.InitialWidth, H: p.InitialHeight}
	opts.DefaultMode = string(p.DefaultMode)
	opts.AutoFocus = p.AutoFocus
	opts.SnapToEdges = p.SnapToEdges
	opts.MinWidth = p.MinWidth
	opts.ReflowShrink = p.ReflowShrink
	opts.Snap = snap.Config{
		EdgeDistance:    p.Snap.EdgeDistance,
		TopDistance:     p.Snap.TopDistance,
		UnsnapThreshold: p.Snap.UnsnapThreshold,
	}
	opts.PagedSize = entity.Size{W: p.PagedWidth, H: p.PagedHeight}
	opts.SettleDelay = p.SettleDelay()
	opts.RecencyGrace = p.RecencyGrace()
	opts.CreateFocusDelay = p.CreateFocusDelay()
	return opts
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WatchConfig calls fn with every valid edit of the config file. It is a
// no-op when the file could not be loaded at startup.
func (a *App) WatchConfig(fn func(*config.Config)) error {
	if a.mgr == nil {
		return nil
	}
	a.mgr.OnConfigChange(fn)
	if err := a.mgr.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	logging.FromContext(a.ctx).Debug().Str("file", a.ConfigFile).Msg("watching config")
	return nil
}

// loadConfig loads configuration from standard locations.
func loadConfig() (*config.Config, string, *config.Manager) {
	mgr, err := config.NewManager()
	if err != nil {
		// Return default config if manager fails
		return withDatabasePath(config.DefaultConfig()), "", nil
	}

	if err := mgr.Load(); err != nil {
		// Return default config if loading fails
		fmt.Fprintf(os.Stderr, "hoverpane: %v\n", err)
		return withDatabasePath(config.DefaultConfig()), mgr.GetConfigFile(), nil
	}

	return mgr.Get(), mgr.GetConfigFile(), mgr
}

func withDatabasePath(cfg *config.Config) *config.Config {
	if cfg.Database.Path == "" {
		cfg.Database.Path, _ = config.GetDatabaseFile()
	}
	return cfg
}
