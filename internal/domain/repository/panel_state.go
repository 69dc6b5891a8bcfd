// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// PanelStateRepository persists per-panel geometry and pin state.
type PanelStateRepository interface {
	// Get retrieves the stored record of a panel.
	// Returns nil if nothing is stored or the stored blob is unreadable.
	Get(ctx context.Context, id entity.PanelID) (*entity.PanelRecord, error)

	// Save stores the full state of a panel.
	Save(ctx context.Context, id entity.PanelID, state entity.PanelState) error

	// Delete removes the stored state of a panel.
	Delete(ctx context.Context, id entity.PanelID) error

	// GetAll retrieves every readable stored record, keyed by panel.
	GetAll(ctx context.Context) (map[entity.PanelID]entity.PanelRecord, error)
}
