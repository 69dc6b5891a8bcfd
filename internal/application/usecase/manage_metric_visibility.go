package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/domain/repository"
	"github.com/bnema/cardboard/internal/logging"
)

// ManageMetricVisibilityUseCase handles the per-metric show/hide toggles.
type ManageMetricVisibilityUseCase struct {
	repo repository.MetricVisibilityRepository
}

// NewManageMetricVisibilityUseCase creates a new visibility use case.
func NewManageMetricVisibilityUseCase(repo repository.MetricVisibilityRepository) *ManageMetricVisibilityUseCase {
	return &ManageMetricVisibilityUseCase{repo: repo}
}

// IsVisible reports whether a metric is shown. Unknown metrics are visible.
func (uc *ManageMetricVisibilityUseCase) IsVisible(ctx context.Context, key entity.MetricKey) bool {
	v, err := uc.repo.Get(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("metric", key.String()).Msg("failed to load metric visibility")
		return true
	}
	if v == nil {
		return true
	}
	return v.Visible
}

// SetVisible stores the toggle of a metric.
func (uc *ManageMetricVisibilityUseCase) SetVisible(ctx context.Context, key entity.MetricKey, visible bool) error {
	if err := uc.repo.Set(ctx, entity.MetricVisibility{Key: key, Visible: visible}); err != nil {
		return fmt.Errorf("failed to save visibility of %s: %w", key, err)
	}
	logging.FromContext(ctx).Debug().Str("metric", key.String()).Bool("visible", visible).Msg("metric visibility changed")
	return nil
}

// Toggle flips the toggle of a metric and returns the new value.
func (uc *ManageMetricVisibilityUseCase) Toggle(ctx context.Context, key entity.MetricKey) (bool, error) {
	visible := !uc.IsVisible(ctx, key)
	if err := uc.SetVisible(ctx, key, visible); err != nil {
		return !visible, err
	}
	return visible, nil
}
