package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Refresh the caches whenever theme files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			return c.app.Watch(cmd.Context(), func(paths []string) {
				_, _ = fmt.Fprintln(w, "refreshed after changes to "+strings.Join(paths, ", "))
			})
		},
	}
}

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview of every set and shortcode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Serve(cmd.Context(), app.ServeOptions{Addr: addr, Watch: watch})
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to serve.addr)")
	cmd.Flags().BoolP("watch", "w", false, "Refresh the caches on file changes while serving")

	return cmd
}
