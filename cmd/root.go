package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/config"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "disciple",
		Short: "Personal devotional study tracker",
		Long: "Disciple walks you through a fixed study course lesson by lesson, " +
			"keeping your completion, notes and checkpoint answers on this device.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyDB, "", "Path to SQLite database file (overrides DISCIPLE_DB env var)")
	pf.String(config.KeyCourse, "", "Path to a course JSON document (default: built-in course)")
	pf.String(config.KeyLogLevel, "", "Log level: debug, info, warn, error")
	pf.String(config.KeyLogMode, "", "Log format: dev or prod")
	pf.Bool(config.KeyEphemeral, false, "Keep progress in memory only")

	rootCmd.AddCommand(
		newStatusCmd(v),
		newLessonsCmd(v),
		newShowCmd(v),
		newCompleteCmd(v),
		newNoteCmd(v, noteKindNote),
		newNoteCmd(v, noteKindCheckpoint),
		newPracticeCmd(v),
		newGotoCmd(v),
		newStepCmd(v, "next"),
		newStepCmd(v, "prev"),
		newReflectCmd(v),
		newThemeCmd(v),
		newResetCmd(v),
		newVersionCmd(),
	)
	return rootCmd
}

// withSession opens a CLI session, runs fn and closes the session.
func withSession(cmd *cobra.Command, v *viper.Viper, fn func(s *session) error) error {
	s, err := openSession(cmd, v, false)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
