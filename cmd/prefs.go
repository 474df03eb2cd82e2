package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/prefs"
)

func newReflectCmd(v *viper.Viper) *cobra.Command {
	var clearText bool

	cmd := &cobra.Command{
		Use:   "reflect [text...]",
		Short: "Show or replace today's reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				text := strings.Join(args, " ")
				if text == "" && !clearText {
					fmt.Fprintln(cmd.OutOrStdout(), s.prefs.DailyReflection())
					return nil
				}
				s.prefs.SetDailyReflection(text)
				fmt.Fprintln(cmd.OutOrStdout(), "Reflection saved.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&clearText, "clear", false, "Clear the reflection")
	return cmd
}

func newThemeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|parchment]",
		Short:     "Show or set the display theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(prefs.ThemeLight), string(prefs.ThemeDark), string(prefs.ThemeParchment)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, v, func(s *session) error {
				if len(args) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), s.prefs.Theme())
					return nil
				}
				t, err := prefs.ParseTheme(args[0])
				if err != nil {
					return err
				}
				s.prefs.SetTheme(t)
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", t)
				return nil
			})
		},
	}
}
