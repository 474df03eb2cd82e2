package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/progress"
)

func newCompleteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [lesson-id]",
		Short: "Toggle a lesson's completion (default: the active lesson)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				id := lessonArg(s, args)
				st, err := s.progress.ToggleLessonComplete(id)
				if err != nil {
					return explain(err)
				}
				verb := "Unmarked"
				if st.IsComplete(id) {
					verb = "Completed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s. Course progress: %d%%\n",
					verb, id, progress.CompletionPercentage(st, s.catalog))
				return nil
			})
		},
	}
}

type noteKind int

const (
	noteKindNote noteKind = iota
	noteKindCheckpoint
)

func newNoteCmd(v *viper.Viper, kind noteKind) *cobra.Command {
	var clearText bool

	use, short := "note", "Set the study note for a lesson"
	if kind == noteKindCheckpoint {
		use, short = "checkpoint", "Set the checkpoint answer for a lesson"
	}

	cmd := &cobra.Command{
		Use:   use + " <lesson-id> [text...]",
		Short: short,
		Long: short + ". The text replaces any previous text; " +
			"with no text, the current text is printed.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				id := args[0]
				text := strings.Join(args[1:], " ")

				if text == "" && !clearText {
					if !s.catalog.Has(id) {
						return explain(&progress.ErrUnknownLesson{ID: id})
					}
					st := s.progress.Snapshot()
					current := st.Note(id)
					if kind == noteKindCheckpoint {
						current = st.Checkpoint(id)
					}
					fmt.Fprintln(cmd.OutOrStdout(), current)
					return nil
				}

				var err error
				if kind == noteKindCheckpoint {
					_, err = s.progress.SetLessonCheckpoint(id, text)
				} else {
					_, err = s.progress.SetLessonNote(id, text)
				}
				if err != nil {
					return explain(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s for %s.\n", use, id)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&clearText, "clear", false, "Clear the stored text")
	return cmd
}

func newPracticeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "practice <lesson-id> <item-number>",
		Short: "Tick or untick a practice item (numbered from 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("item number: %w", err)
			}
			return withSession(cmd, v, func(s *session) error {
				st, err := s.progress.TogglePractice(args[0], n-1)
				if err != nil {
					return explain(err)
				}
				state := "unticked"
				if st.PracticeChecked(args[0], n-1) {
					state = "ticked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Practice item %d of %s %s.\n", n, args[0], state)
				return nil
			})
		},
	}
}

func newGotoCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <lesson-id>",
		Short: "Make a lesson the active lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				if _, err := s.progress.SetActiveLesson(args[0]); err != nil {
					return explain(err)
				}
				fl, _ := s.catalog.Lesson(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Now studying %s  %s\n", fl.ID, fl.Title)
				return nil
			})
		},
	}
}

func newStepCmd(v *viper.Viper, name string) *cobra.Command {
	dir, short := progress.Next, "Move to the next lesson"
	if name == "prev" {
		dir, short = progress.Previous, "Move to the previous lesson"
	}
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				before := s.progress.ResolveActiveLesson()
				if _, err := s.progress.Advance(dir); err != nil {
					return explain(err)
				}
				after := s.progress.ResolveActiveLesson()
				if after.ID == before.ID {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s lesson; still on %s  %s\n", dir, after.ID, after.Title)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Now studying %s  %s\n", after.ID, after.Title)
				return nil
			})
		},
	}
}

// lessonArg returns the lesson named in args, or the active lesson.
func lessonArg(s *session, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.progress.ResolveActiveLesson().ID
}
