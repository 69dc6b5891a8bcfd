// Package cmd provides Cobra CLI commands for cardboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/cardboard/internal/cli"
	"github.com/bnema/cardboard/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "cardboard",
		Short: "A canvas of draggable metric cards in your terminal",
		Long: `Cardboard - a canvas of draggable, resizable metric cards.

Cards repel each other when dragged close, warn before they leave the
screen and remember where you put them. The canvas pans with shift+drag,
zooms with the mouse wheel and can zoom out to show every card at once.

Use 'cardboard view' to open the interactive canvas, 'cardboard simulate'
to replay input scripts headlessly, or 'cardboard state' to inspect and
reset what has been saved.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile: configFile,
				// The canvas owns the terminal, so its logs go to a file.
				LogToFile: cmd.Name() == viewCmd.Name(),
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/cardboard/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
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
	rootCmd.Version = info.String()
}
