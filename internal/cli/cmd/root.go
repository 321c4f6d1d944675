// Package cmd provides Cobra CLI commands for fontpicker.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli"
	"github.com/bnema/fontpicker/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "fontpicker",
		Short: "Resolve Bunny Fonts families into stylesheet URLs and CSS",
		Long: `fontpicker - resolve font references against the Bunny Fonts catalog.

A reference can be a slug (roboto), a display name (Open Sans) or a family
page URL (https://fonts.bunny.net/family/open-sans). Resolved families are
combined into a single stylesheet URL, <link> tags and CSS custom properties.

The catalog is read from the local cache, then from fonts.bunny.net, and
finally from the catalog bundled in the binary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "path", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.WithBuildInfo(buildInfo))
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails.
	closeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}
