// Package commands implements the CLI commands for base47.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/base47/internal/app"
	"go.trai.ch/base47/internal/build"
	"go.trai.ch/base47/internal/engine/shortcode"
)

// CLI represents the command line interface for base47.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	RenderShortcode(ctx context.Context, name string, opts app.RenderOptions) (*app.Page, error)
	RenderTemplate(ctx context.Context, set, file string) (*app.Page, error)
	ListSets(ctx context.Context) []app.SetInfo
	ListTemplates(ctx context.Context, set string) ([]app.TemplateInfo, error)
	ListShortcodes(ctx context.Context, includeInactive bool) []shortcode.Entry
	Refresh(ctx context.Context) error
	Activate(ctx context.Context, slugs ...string) error
	Deactivate(ctx context.Context, slugs ...string) error
	SetDefault(ctx context.Context, slug string) error
	SetMode(ctx context.Context, mode, slug string, on bool) error
	Install(ctx context.Context, source string, opts app.InstallOptions) (string, error)
	Remove(ctx context.Context, slug string) error
	ClearLogs(ctx context.Context) error
	Watch(ctx context.Context, notify func(paths []string)) error
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "base47",
		Short:         "Render HTML theme sets as shortcodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Read by main before the graph is built; declared here so cobra accepts them.
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to base47.yaml")
	flags.String("root", "", "Themes root directory")
	flags.String("base-url", "", "Public URL of the themes root")
	flags.Bool("json", false, "Write console logs as JSON")
	flags.Bool("trace", false, "Log one line per finished render span")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newRefreshCmd())
	rootCmd.AddCommand(c.newActivateCmd())
	rootCmd.AddCommand(c.newDeactivateCmd())
	rootCmd.AddCommand(c.newDefaultCmd())
	rootCmd.AddCommand(c.newModeCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newLogsCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
