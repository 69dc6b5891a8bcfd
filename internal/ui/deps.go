// Package ui wires the card interaction core into a workbench that renderers
// and scripts drive with pointer, key and frame events.
package ui

import (
	"context"
	"time"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/ui/card"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to NewWorkbench.
type Dependencies struct {
	// Core context and configuration
	Ctx    context.Context
	Config *config.Config

	// Viewport reports the live screen size.
	Viewport port.Viewport
	// Sink receives panel and transform changes (optional).
	Sink port.PanelEventSink

	// Use Cases. Without them nothing is persisted.
	PanelsUC     *usecase.ManagePanelStateUseCase
	CanvasUC     *usecase.ManageCanvasUseCase
	VisibilityUC *usecase.ManageMetricVisibilityUseCase
	ResetUC      *usecase.ResetStateUseCase

	// Layout is the hit-test geometry of panel chrome (optional).
	Layout *card.Layout

	// Now is the clock (optional, defaults to time.Now). Scripts replace it
	// with a virtual clock.
	Now func() time.Time

	// OnQuit is called when the quit action fires (optional).
	OnQuit func()
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Viewport == nil {
		return ErrMissingDependency("Viewport")
	}
	// Use cases are optional - can be nil if not needed
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
