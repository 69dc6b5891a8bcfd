package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/logging"
)

// ResetStateUseCase wipes every persisted card, canvas and visibility entry.
type ResetStateUseCase struct {
	store port.KeyValueStore
}

// NewResetStateUseCase creates a new reset use case.
func NewResetStateUseCase(store port.KeyValueStore) *ResetStateUseCase {
	return &ResetStateUseCase{store: store}
}

// Execute clears the store and returns how many entries were removed.
func (uc *ResetStateUseCase) Execute(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	keys, err := uc.store.Keys(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to count stored state: %w", err)
	}
	if err := uc.store.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear stored state: %w", err)
	}

	log.Info().Int("entries", len(keys)).Msg("all saved state cleared")
	return len(keys), nil
}
