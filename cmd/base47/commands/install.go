package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <folder | archive.zip | archive.tar.gz>",
		Short: "Install a theme set into the themes root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			force, _ := cmd.Flags().GetBool("force")

			slug, err := c.app.Install(cmd.Context(), args[0], app.InstallOptions{Name: name, Force: force})
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "installed "+slug)
			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "Folder name for the installed set")
	cmd.Flags().BoolP("force", "f", false, "Replace an existing set of the same name")

	return cmd
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <set>",
		Short: "Delete a theme set and its switches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "removed "+args[0])
			return nil
		},
	}
}
