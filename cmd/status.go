package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/progress"
	"github.com/abhisek/disciple/internal/store"
)

func newStatusCmd(v *viper.Viper) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show course completion and the lesson to resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				w := cmd.OutOrStdout()
				printStatus(w, s.progress.Snapshot(), s.catalog)
				if verbose {
					printStoredKeys(w, s.backend)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also list the keys held in progress storage")
	return cmd
}

func printStatus(w io.Writer, st progress.State, c *catalog.Catalog) {
	course := c.Course()
	pct := progress.CompletionPercentage(st, c)

	fmt.Fprintln(w, course.Title)
	if course.Tagline != "" {
		fmt.Fprintln(w, course.Tagline)
	}
	fmt.Fprintf(w, "Progress: %s %3d%%  (%d/%d lessons)\n\n",
		textBar(pct, 20), pct, progress.CompletedCount(st, c), c.Len())

	fmt.Fprintln(w, moduleTable(progress.ModuleCompletion(st, c)))

	active := progress.ResolveActiveLesson(st, c)
	fmt.Fprintf(w, "\nResume: %s  %s (%s)\n", active.ID, active.Title, active.ModuleTitle)
}

// moduleTable lays out per-module completion as borderless columns.
func moduleTable(sums []progress.ModuleSummary) string {
	rows := make([][]string, 0, len(sums))
	for _, m := range sums {
		rows = append(rows, []string{
			m.ModuleID,
			m.Title,
			fmt.Sprintf("%d/%d", m.Completed, m.Total),
			fmt.Sprintf("%3d%%", m.Percent()),
		})
	}

	cell := lipgloss.NewStyle().PaddingLeft(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Rows(rows...).
		String()
}

// printStoredKeys lists what the backend holds, for diagnosing storage.
func printStoredKeys(w io.Writer, b store.Backend) {
	lister, ok := b.(store.Lister)
	if !ok {
		fmt.Fprintln(w, "\nStored keys: unavailable")
		return
	}
	keys, err := lister.Keys()
	if err != nil {
		fmt.Fprintf(w, "\nStored keys: %v\n", err)
		return
	}
	fmt.Fprintf(w, "\nStored keys (%d):\n", len(keys))
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\n", k)
	}
}

// textBar renders pct as a fixed-width bar of '#' and '-'.
func textBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
