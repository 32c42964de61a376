// Package main is the entry point for the base47 theme renderer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/spf13/pflag"
	"go.trai.ch/base47/cmd/base47/commands"
	"go.trai.ch/base47/internal/adapters/config"
	"go.trai.ch/base47/internal/app"
	_ "go.trai.ch/base47/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, func() {}, err
		}
		return c, func() { _ = c.App.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	overrides, err := parseOverrides(args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	ctx = config.WithOverrides(ctx, overrides)

	components, release, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer release()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// parseOverrides reads the global flags ahead of cobra, since the component
// graph has to know the config path and themes root before commands run.
func parseOverrides(args []string) (config.Overrides, error) {
	fs := pflag.NewFlagSet("base47", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var o config.Overrides
	fs.StringVarP(&o.Path, "config", "c", "", "")
	fs.StringVar(&o.ThemesRoot, "root", "", "")
	fs.StringVar(&o.BaseURL, "base-url", "", "")
	fs.BoolVar(&o.JSON, "json", false, "")
	fs.BoolVar(&o.Trace, "trace", false, "")
	fs.BoolP("help", "h", false, "")

	if err := fs.Parse(args); err != nil {
		return config.Overrides{}, err
	}
	return o, nil
}
