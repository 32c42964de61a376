package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/app"
	"go.trai.ch/base47/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <shortcode | file.html>",
		Short: "Render a shortcode or template to stdout",
		Long: "Render a shortcode such as base47-mivon-home, or a template file name.\n" +
			"File names are looked up in --set, then the default set, the active sets and all sets.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			withAssets, _ := cmd.Flags().GetBool("assets")
			all, _ := cmd.Flags().GetBool("all")
			set, _ := cmd.Flags().GetString("set")

			var (
				page *app.Page
				err  error
			)
			if domain.IsTemplateFile(args[0]) {
				page, err = c.app.RenderTemplate(cmd.Context(), set, args[0])
			} else {
				page, err = c.app.RenderShortcode(cmd.Context(), args[0], app.RenderOptions{IncludeInactive: all})
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if withAssets {
				_, _ = fmt.Fprint(out, page.Head)
			}
			_, _ = fmt.Fprintln(out, page.HTML)
			if withAssets {
				_, _ = fmt.Fprint(out, page.Footer)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("assets", "a", false, "Print the stylesheet and script tags around the fragment")
	cmd.Flags().Bool("all", false, "Resolve shortcodes of inactive sets too")
	cmd.Flags().StringP("set", "s", "", "Set to look the template file up in")

	return cmd
}
