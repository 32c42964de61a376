package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/ui/output"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List theme sets, templates or shortcodes",
	}
	cmd.PersistentFlags().StringP("output", "o", formatText, "Output format: text or json")

	cmd.AddCommand(c.newListSetsCmd())
	cmd.AddCommand(c.newListTemplatesCmd())
	cmd.AddCommand(c.newListShortcodesCmd())
	return cmd
}

func (c *CLI) newListSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List discovered theme sets and their switches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format); err != nil {
				return err
			}

			sets := c.app.ListSets(cmd.Context())
			w := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(w, sets)
			}
			if len(sets) == 0 {
				_, _ = fmt.Fprintln(w, "no theme sets found")
				return nil
			}

			out := output.New(w)
			rows := make([][]string, 0, len(sets))
			for _, s := range sets {
				rows = append(rows, []string{
					s.Slug, s.Label, s.Version,
					marker(out, s.Active), marker(out, s.Default),
					marker(out, s.Manifest), marker(out, s.Smart),
					strconv.Itoa(s.Templates),
				})
			}
			writeTable(w, []string{"SET", "LABEL", "VERSION", "ACTIVE", "DEFAULT", "MANIFEST", "SMART", "TEMPLATES"}, rows)
			return nil
		},
	}
}

func (c *CLI) newListTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List template files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format); err != nil {
				return err
			}
			set, _ := cmd.Flags().GetString("set")

			templates, err := c.app.ListTemplates(cmd.Context(), set)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(w, templates)
			}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{t.Set, t.File})
			}
			writeTable(w, []string{"SET", "FILE"}, rows)
			return nil
		},
	}
	cmd.Flags().StringP("set", "s", "", "Only list the templates of this set")
	return cmd
}

func (c *CLI) newListShortcodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcodes",
		Short: "List registered shortcode names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("output")
			if err := checkFormat(format); err != nil {
				return err
			}
			all, _ := cmd.Flags().GetBool("all")
			aliases, _ := cmd.Flags().GetBool("aliases")

			entries := c.app.ListShortcodes(cmd.Context(), all)
			if !aliases {
				kept := entries[:0]
				for _, e := range entries {
					if !e.Alias {
						kept = append(kept, e)
					}
				}
				entries = kept
			}

			w := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(w, entries)
			}
			out := output.New(w)
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{"[" + e.Name + "]", e.Set, e.File, marker(out, e.Alias)})
			}
			writeTable(w, []string{"SHORTCODE", "SET", "FILE", "ALIAS"}, rows)
			return nil
		},
	}
	cmd.Flags().Bool("all", false, "Include the shortcodes of inactive sets")
	cmd.Flags().Bool("aliases", false, "Include the legacy alias names")
	return cmd
}
