package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/app"
	"go.trai.ch/zerr"
)

var errExpectedOnOff = zerr.New("expected 'on' or 'off'")

func (c *CLI) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Clear the discovery cache and rescan the themes root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Refresh(cmd.Context()); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "caches refreshed")
			return nil
		},
	}
}

func (c *CLI) newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <set>...",
		Short: "Enable theme sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Activate(cmd.Context(), args...); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "activated "+strings.Join(args, ", "))
			return nil
		},
	}
}

func (c *CLI) newDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <set>...",
		Short: "Disable theme sets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Deactivate(cmd.Context(), args...); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "deactivated "+strings.Join(args, ", "))
			return nil
		},
	}
}

func (c *CLI) newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default <set>",
		Short: "Set the default theme set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SetDefault(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "default set is "+args[0])
			return nil
		},
	}
}

func (c *CLI) newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mode <manifest|smart> <set> <on|off>",
		Short:     "Switch the manifest or smart asset loading of a set",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{app.ModeManifest, app.ModeSmart},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := onOff(args[2])
			if err != nil {
				return err
			}
			if err := c.app.SetMode(cmd.Context(), args[0], args[1], on); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), args[0]+" mode "+strings.ToLower(args[2])+" for "+args[1])
			return nil
		},
	}
}

func onOff(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, zerr.With(errExpectedOnOff, "value", arg)
	}
}
