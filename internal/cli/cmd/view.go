package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/cardboard/internal/cli/model"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/bnema/cardboard/internal/ui"
	"github.com/bnema/cardboard/internal/ui/scene"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive card canvas",
	Long: `Open the card canvas in the terminal.

Drag a card by its header, resize it from the bottom right corner and
click the pin icon to lock it in place. Shift+drag pans the canvas, the
mouse wheel zooms around the cursor and z zooms out to show every card.
Space plays or pauses the timeline; three quick presses rewind it.
Typing idkfa clears everything that was saved.

Configuration changes are applied while the canvas is open.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "view")
	log := logging.FromContext(ctx)

	sc := scene.New()
	viewport := model.NewTerminalViewport(0, 0)
	wb, err := ui.NewWorkbench(&ui.Dependencies{
		Ctx:          ctx,
		Config:       app.Config,
		Viewport:     viewport,
		Sink:         sc,
		PanelsUC:     app.PanelsUC,
		CanvasUC:     app.CanvasUC,
		VisibilityUC: app.VisibilityUC,
		ResetUC:      app.ResetUC,
	})
	if err != nil {
		return err
	}
	if err := wb.BuildScenePanels(); err != nil {
		return err
	}

	m := model.NewCanvasModel(ctx, app.Theme, model.CanvasModelConfig{
		Workbench: wb,
		Scene:     sc,
		Viewport:  viewport,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err := app.ConfigManager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	_, err = p.Run()
	// Writes still pending when the program is killed.
	wb.Flush()
	if err != nil {
		return fmt.Errorf("canvas view failed: %w", err)
	}
	return nil
}
