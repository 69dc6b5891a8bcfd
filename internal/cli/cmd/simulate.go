package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/cli"
	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/infrastructure/script"
)

var (
	simulateSVGDir  string
	simulatePersist bool
	simulateJobs    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>...",
	Short: "Replay input scripts without a terminal",
	Long: `Replay YAML input scripts against a headless canvas and print the
resulting card layout.

Each script runs on its own canvas with an empty in-memory state, so
several scripts run in parallel. With --persist every script runs in turn
against the saved state, as if a user had performed the input.

Examples:
  cardboard simulate drag.yaml
  cardboard simulate --svg out/ scripts/*.yaml
  cardboard simulate --persist setup-layout.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateSVGDir, "svg", "", "write an SVG snapshot of each final layout to this directory")
	simulateCmd.Flags().BoolVar(&simulatePersist, "persist", false, "run against the saved state instead of a fresh one")
	simulateCmd.Flags().IntVarP(&simulateJobs, "jobs", "j", runtime.NumCPU(), "scripts replayed at once")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateCLIRenderer(app.Theme)

	scripts := make([]*script.Script, 0, len(args))
	for _, path := range args {
		s, err := script.Load(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	opts := cli.SimulateOptions{
		Parallelism: simulateJobs,
		SVGDir:      simulateSVGDir,
	}
	if simulatePersist {
		opts.NewStore = func() port.KeyValueStore { return app.Store }
		opts.Parallelism = 1
	}
	if opts.SVGDir != "" {
		if err := os.MkdirAll(opts.SVGDir, 0o755); err != nil {
			return fmt.Errorf("create svg directory: %w", err)
		}
	}

	results, err := cli.Simulate(app.Ctx(), app.Config, scripts, opts)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}

	for _, res := range results {
		fmt.Printf("%s %s\n\n", app.Theme.Title.Render(styles.IconPlay), app.Theme.Subtitle.Render(res.Script))
		t := res.Transform
		fmt.Println(renderer.RenderList(res.Rows, t.PanOffsetX, t.PanOffsetY, t.ZoomScale))
		if res.SVGPath != "" {
			fmt.Println(app.Theme.Subtle.Render("snapshot " + res.SVGPath))
		}
		fmt.Println()
	}
	return nil
}
