package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/domain/repository"
	"github.com/bnema/cardboard/internal/logging"
)

// ManageCanvasUseCase loads and saves the canvas transform.
type ManageCanvasUseCase struct {
	repo repository.CanvasStateRepository
}

// NewManageCanvasUseCase creates a new canvas use case.
func NewManageCanvasUseCase(repo repository.CanvasStateRepository) *ManageCanvasUseCase {
	return &ManageCanvasUseCase{repo: repo}
}

// Load returns the stored transform, or the identity transform.
func (uc *ManageCanvasUseCase) Load(ctx context.Context) entity.CanvasTransform {
	t, err := uc.repo.Get(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to load canvas transform, using defaults")
		return entity.DefaultTransform()
	}
	if t == nil {
		return entity.DefaultTransform()
	}
	return t.Normalize()
}

// Save persists the transform.
func (uc *ManageCanvasUseCase) Save(ctx context.Context, t entity.CanvasTransform) error {
	if err := uc.repo.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to save canvas transform: %w", err)
	}
	return nil
}
