package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/catalog"
	"github.com/abhisek/disciple/internal/progress"
)

func newLessonsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "lessons",
		Aliases: []string{"ls"},
		Short:   "List every lesson in study order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				printLessons(cmd.OutOrStdout(), s.progress.Snapshot(), s.catalog)
				return nil
			})
		},
	}
}

func printLessons(w io.Writer, st progress.State, c *catalog.Catalog) {
	active := progress.ResolveActiveLesson(st, c).ID
	module := ""
	for _, fl := range c.Lessons() {
		if fl.ModuleID != module {
			if module != "" {
				fmt.Fprintln(w)
			}
			module = fl.ModuleID
			fmt.Fprintf(w, "%s  %s\n", fl.ModuleID, fl.ModuleTitle)
		}
		mark := "[ ]"
		if st.IsComplete(fl.ID) {
			mark = "[x]"
		}
		pointer := "  "
		if fl.ID == active {
			pointer = "> "
		}
		fmt.Fprintf(w, "%s%s %-6s %s\n", pointer, mark, fl.ID, fl.Title)
	}
}

func newShowCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show [lesson-id]",
		Short: "Show a lesson (default: the active lesson)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				var fl catalog.FlattenedLesson
				if len(args) == 1 {
					var ok bool
					fl, ok = s.catalog.Lesson(args[0])
					if !ok {
						return explain(&progress.ErrUnknownLesson{ID: args[0]})
					}
				} else {
					fl = s.progress.ResolveActiveLesson()
				}
				printLesson(cmd.OutOrStdout(), fl, s.progress.Snapshot(), s.catalog.Len())
				return nil
			})
		},
	}
}

func printLesson(w io.Writer, fl catalog.FlattenedLesson, st progress.State, total int) {
	status := "not complete"
	if st.IsComplete(fl.ID) {
		status = "complete"
	}
	fmt.Fprintf(w, "%s · lesson %d of %d · %s\n", fl.ModuleTitle, fl.Index+1, total, status)
	fmt.Fprintf(w, "%s  %s\n", fl.ID, fl.Title)
	if fl.Objective != "" {
		fmt.Fprintf(w, "Objective: %s\n", fl.Objective)
	}

	if len(fl.Read) > 0 {
		fmt.Fprintln(w, "\nRead:")
		for _, r := range fl.Read {
			if r.ExternalLink != "" {
				fmt.Fprintf(w, "  - %s  <%s>\n", r.Reference, r.ExternalLink)
			} else {
				fmt.Fprintf(w, "  - %s\n", r.Reference)
			}
		}
	}

	if len(fl.Practice) > 0 {
		fmt.Fprintln(w, "\nPractice:")
		for i, p := range fl.Practice {
			mark := "[ ]"
			if st.PracticeChecked(fl.ID, i) {
				mark = "[x]"
			}
			fmt.Fprintf(w, "  %d. %s %s\n", i+1, mark, p)
		}
	}

	if fl.Checkpoint != "" {
		fmt.Fprintf(w, "\nCheckpoint: %s\n", fl.Checkpoint)
		if answer := st.Checkpoint(fl.ID); answer != "" {
			fmt.Fprintf(w, "  %s\n", indent(answer))
		}
	}

	if note := st.Note(fl.ID); note != "" {
		fmt.Fprintf(w, "\nNotes:\n  %s\n", indent(note))
	}
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
