package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile extension sources that changed since the last pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Build(cmd.Context(), force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild every source, bypassing the change-set cache")
	return cmd
}
