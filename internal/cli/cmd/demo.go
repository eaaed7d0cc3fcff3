package cmd

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/hoverpane/internal/cli"
	"github.com/bnema/hoverpane/internal/infrastructure/config"
	"github.com/bnema/hoverpane/internal/logging"
	"github.com/bnema/hoverpane/internal/tui"
	"github.com/bnema/hoverpane/internal/ui/component"
)

var (
	demoVault   string
	demoNoWatch bool
)

var demoCmd = &cobra.Command{
	Use:   "demo <note>",
	Short: "Open a note in the terminal host",
	Long: `Open a vault note full screen and show linked notes in floating panels.

Hover a highlighted link to preview it. Drag a panel by its title bar,
resize it from the edges, and drag it against the left, right or top edge
to snap. Clicking a missing link creates the note.

Logs go to the configured log file while the host owns the screen.

Examples:
  hoverpane demo index.md
  hoverpane demo --vault ~/notes projects/plan.md`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVar(&demoVault, "vault", "", "vault directory (overrides vault.root)")
	demoCmd.Flags().BoolVar(&demoNoWatch, "no-watch", false, "do not reload files changed on disk")
}

func runDemo(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if demoVault != "" {
		app.Config.Vault.Root = demoVault
	}

	v, err := app.Vault()
	if err != nil {
		return err
	}
	tracker, err := app.Tracker()
	if err != nil {
		return err
	}
	opener, err := app.Opener()
	if err != nil {
		return err
	}
	if err := app.LogToFile(); err != nil {
		return err
	}

	// Accept paths relative to the working directory as well as vault paths.
	note := filepath.ToSlash(args[0])
	if abs, err := filepath.Abs(args[0]); err == nil {
		if rel, ok := v.Rel(abs); ok {
			note = rel
		}
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "tui"), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := app.Config
	reconfigure := func(apply func(component.PopoverOptions, component.HoverTriggerOptions)) {
		err := app.WatchConfig(func(c *config.Config) {
			apply(cli.PopoverOptionsFromConfig(c.Popover), component.HoverTriggerOptions{
				WaitTime:   c.Popover.TriggerDelay(),
				CloseDelay: c.Popover.CloseDelay(),
			})
		})
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config reload unavailable")
		}
	}
	return tui.Run(ctx, tui.Deps{
		Vault:         v,
		Recency:       tracker,
		Opener:        opener,
		Theme:         app.Theme,
		Options:       app.PopoverOptions(),
		Trigger:       app.TriggerOptions(),
		CellWidth:     cfg.TUI.CellWidth,
		CellHeight:    cfg.TUI.CellHeight,
		MarkdownStyle: cfg.TUI.MarkdownStyle,
		Document:      note,
		Watch:         cfg.Vault.Watch && !demoNoWatch,
		Reconfigure:   reconfigure,
	})
}
