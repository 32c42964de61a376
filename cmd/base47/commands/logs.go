package commands

import "github.com/spf13/cobra"

func (c *CLI) newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Manage the log file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.ClearLogs(cmd.Context()); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "log file cleared")
			return nil
		},
	})
	return cmd
}
