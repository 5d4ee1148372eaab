package commands

import "github.com/spf13/cobra"

func (c *CLI) newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events <cycle-id>",
		Short: "Print the diagnostics recorded for a request cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Events(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}
