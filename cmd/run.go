package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/disciple/internal/app"
)

// runApp opens a session and hands it to the interactive interface.
func runApp(cmd *cobra.Command, v *viper.Viper) error {
	s, err := openSession(cmd, v, true)
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(app.Options{
		Progress: s.progress,
		Prefs:    s.prefs,
		Logger:   s.logger,
	})
}
