package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/domain/entity"
	"github.com/bnema/hoverpane/internal/infrastructure/vault"
)

var resolvePlain bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <source> <link>...",
	Short: "Resolve link text the way panels do",
	Long: `Resolve one or more links as written in a source note and print the
target path, its kind and the line range of any #heading or #^block subpath.

Examples:
  hoverpane resolve index.md "plan" "plan#Goals" "./img/diagram.png"
  hoverpane resolve --plain index.md missing`,
	Args: cobra.MinimumNArgs(2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolvePlain, "plain", false, "tab separated output without styling")
}

// resolution is the outcome for one link.
type resolution struct {
	Link    string
	Target  string
	Kind    string
	Subpath string
}

func (r resolution) row() table.Row {
	return table.Row{r.Link, r.Target, r.Kind, r.Subpath}
}

func runResolve(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	v, err := app.Vault()
	if err != nil {
		return err
	}

	results, err := resolveLinks(app.Ctx(), v, args[0], args[1:])
	if err != nil {
		return err
	}

	if resolvePlain {
		for _, r := range results {
			fmt.Printf("%s\t%s\t%s\t%s\n", r.Link, r.Target, r.Kind, r.Subpath)
		}
		return nil
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, r.row())
	}
	columns := styles.ResolveTableColumns()
	t := styles.NewStyledTable(app.Theme, columns, rows, tableWidth(columns), len(rows)+1)
	t.Blur()
	fmt.Println(t.View())
	return nil
}

// resolveLinks resolves every link concurrently. Results keep argument
// order; a missing target is reported, not returned as an error.
func resolveLinks(ctx context.Context, v *vault.Vault, source string, links []string) ([]resolution, error) {
	results := make([]resolution, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range links {
		g.Go(func() error {
			link := entity.ParseLinktext(text)
			r := resolution{Link: text, Target: "-", Kind: "missing", Subpath: "-"}

			ref, ok := v.FirstLinkpathDest(gctx, link.Path, source)
			if ok {
				r.Target = ref.Path
				r.Kind = ref.Kind.String()
				rng, err := v.ResolveSubpath(gctx, *ref, link.Subpath)
				if err != nil {
					return fmt.Errorf("resolve %q: %w", text, err)
				}
				if rng != nil {
					r.Subpath = formatRange(*rng)
				}
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// formatRange prints 1-based lines, "12-" when the section runs to the end.
func formatRange(rng entity.SubpathRange) string {
	start := strconv.Itoa(rng.Start.Line + 1)
	if rng.End == nil {
		return start + "-"
	}
	return start + "-" + strconv.Itoa(rng.End.Line+1)
}

// tableWidth fits every column plus the default cell padding.
func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}
