package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// displayVersion returns version in canonical semver form when it is one.
func displayVersion(v string) string {
	sv := v
	if len(sv) > 0 && sv[0] != 'v' {
		sv = "v" + sv
	}
	if semver.IsValid(sv) {
		return semver.Canonical(sv)
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "disciple", displayVersion(version))
		},
	}
}
