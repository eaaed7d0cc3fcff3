package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/hoverpane/internal/cli/model"
	"github.com/bnema/hoverpane/internal/cli/styles"
)

var recentList bool

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Browse recently opened notes",
	Long: `Browse the notes opened from panels, newest first.

Press enter to open the selected note with the desktop application and d to
drop it from the list.`,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolVar(&recentList, "list", false, "print the list instead of browsing it")
}

func runRecent(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	tracker, err := app.Tracker()
	if err != nil {
		return err
	}

	if recentList {
		entries, err := tracker.Recent(app.Ctx())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\t%d\t%s\n", e.Path, e.Title, e.OpenCount, styles.RelativeTime(e.LastOpened))
		}
		return nil
	}

	opener, err := app.Opener()
	if err != nil {
		return err
	}
	m := model.NewRecentModel(app.Ctx(), app.Theme, tracker, opener)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run recent list: %w", err)
	}
	return nil
}
