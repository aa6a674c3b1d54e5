package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage",
		Short: "Copy the configured packages into a clean build workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Stage(cmd.Context())
		},
	}
}
