package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchwire/searchwire/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "searchwire %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
