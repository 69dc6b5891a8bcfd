package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/entity"
)

var stateResetYes bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect and reset saved card state",
	Long:  `List, pin and clear the card positions, sizes and canvas transform saved between runs.`,
}

var stateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved cards and the canvas transform",
	RunE:    runStateList,
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear every saved card, metric and canvas setting",
	Long: `Clear everything cardboard has saved: card positions, sizes and pins,
hidden metrics and the canvas transform. This is what typing idkfa does
inside the canvas.`,
	RunE: runStateReset,
}

var statePinCmd = &cobra.Command{
	Use:   "pin <card-id>",
	Short: "Pin a card so it can no longer be dragged",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runStatePin(args[0], true)
	},
}

var stateUnpinCmd = &cobra.Command{
	Use:   "unpin <card-id>",
	Short: "Unpin a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runStatePin(args[0], false)
	},
}

var stateForgetCmd = &cobra.Command{
	Use:   "forget <card-id>",
	Short: "Drop the saved state of one card",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateForget,
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateListCmd, stateResetCmd, statePinCmd, stateUnpinCmd, stateForgetCmd)
	stateResetCmd.Flags().BoolVarP(&stateResetYes, "yes", "y", false, "skip confirmation prompt")
}

func runStateList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateCLIRenderer(app.Theme)
	ctx := app.Ctx()

	stored, err := app.PanelsUC.List(ctx)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	rows := make([]styles.PanelRow, 0, len(stored))
	for _, p := range stored {
		rows = append(rows, styles.PanelRow{
			ID:     string(p.ID),
			X:      p.State.Position.X,
			Y:      p.State.Position.Y,
			Width:  p.State.Size.Width,
			Height: p.State.Size.Height,
			Pinned: p.State.IsPinned,
		})
	}
	t := app.CanvasUC.Load(ctx)
	fmt.Println(renderer.RenderList(rows, t.PanOffsetX, t.PanOffsetY, t.ZoomScale))
	return nil
}

func runStateReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateCLIRenderer(app.Theme)

	if !stateResetYes {
		confirm := styles.NewConfirm(app.Theme, "Clear all saved card state?")
		confirm.Detail = "Positions, sizes, pins, hidden metrics and the canvas transform will be lost."
		final, err := tea.NewProgram(confirm).Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if m, ok := final.(styles.ConfirmModel); !ok || !m.Result() {
			fmt.Println(renderer.RenderResetCanceled())
			return nil
		}
	}

	n, err := app.ResetUC.Execute(app.Ctx())
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderReset(n))
	return nil
}

func runStatePin(id string, pinned bool) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateCLIRenderer(app.Theme)

	if _, err := app.PanelsUC.SetPinned(app.Ctx(), entity.PanelID(id), pinned); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderPinned(id, pinned))
	return nil
}

func runStateForget(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewStateCLIRenderer(app.Theme)

	if err := app.PanelsUC.Forget(app.Ctx(), entity.PanelID(args[0])); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderForgotten(args[0]))
	return nil
}
