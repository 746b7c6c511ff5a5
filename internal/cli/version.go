package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessro/tripid/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version, commit, and build date of tripid.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tripid %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
