package cmd

import (
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the `version` command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("creditline %s\n", Version)
			cmd.Printf("Build time: %s\n", BuildTime)
			cmd.Printf("Git commit: %s\n", GitCommit)
		},
	}
}
