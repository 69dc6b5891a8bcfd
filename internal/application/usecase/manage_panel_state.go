// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/domain/repository"
	"github.com/bnema/cardboard/internal/logging"
)

// ManagePanelStateUseCase loads and saves per-panel state.
// Loads never fail: missing or unreadable state resolves to the caller's
// defaults.
type ManagePanelStateUseCase struct {
	repo repository.PanelStateRepository
}

// NewManagePanelStateUseCase creates a new panel state use case.
func NewManagePanelStateUseCase(repo repository.PanelStateRepository) *ManagePanelStateUseCase {
	return &ManagePanelStateUseCase{repo: repo}
}

// Load returns the stored state of a panel merged over defaults.
func (uc *ManagePanelStateUseCase) Load(ctx context.Context, id entity.PanelID, defaults entity.PanelState) entity.PanelState {
	log := logging.FromContext(ctx)

	record, err := uc.repo.Get(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("panel_id", string(id)).Msg("failed to load panel state, using defaults")
		return entity.PanelRecord{}.Merge(defaults)
	}
	if record == nil {
		log.Debug().Str("panel_id", string(id)).Msg("no stored panel state")
		return entity.PanelRecord{}.Merge(defaults)
	}
	return record.Merge(defaults)
}

// Save persists the full state of a panel.
func (uc *ManagePanelStateUseCase) Save(ctx context.Context, id entity.PanelID, state entity.PanelState) error {
	if err := uc.repo.Save(ctx, id, state); err != nil {
		return fmt.Errorf("failed to save panel %s: %w", id, err)
	}
	logging.FromContext(ctx).Trace().
		Str("panel_id", string(id)).
		Float64("x", state.Position.X).
		Float64("y", state.Position.Y).
		Bool("pinned", state.IsPinned).
		Msg("panel state saved")
	return nil
}

// SetPinned updates only the pin flag of a stored panel.
func (uc *ManagePanelStateUseCase) SetPinned(ctx context.Context, id entity.PanelID, pinned bool) (entity.PanelState, error) {
	state := uc.Load(ctx, id, entity.DefaultPanelState())
	state.IsPinned = pinned
	if err := uc.Save(ctx, id, state); err != nil {
		return entity.PanelState{}, err
	}
	return state, nil
}

// Forget removes the stored state of a panel.
func (uc *ManagePanelStateUseCase) Forget(ctx context.Context, id entity.PanelID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to forget panel %s: %w", id, err)
	}
	return nil
}

// StoredPanel is a panel state found in storage.
type StoredPanel struct {
	ID    entity.PanelID
	State entity.PanelState
}

// List returns every stored panel sorted by id, with missing fields filled
// from the panel defaults.
func (uc *ManagePanelStateUseCase) List(ctx context.Context) ([]StoredPanel, error) {
	records, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list panel states: %w", err)
	}

	out := make([]StoredPanel, 0, len(records))
	for id, record := range records {
		out = append(out, StoredPanel{ID: id, State: record.Merge(entity.DefaultPanelState())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
