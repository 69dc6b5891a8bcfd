package repository

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// MetricVisibilityRepository persists per-metric visibility toggles.
type MetricVisibilityRepository interface {
	// Get retrieves the stored toggle of a metric.
	// Returns nil if no toggle is stored.
	Get(ctx context.Context, key entity.MetricKey) (*entity.MetricVisibility, error)

	// Set stores the toggle of a metric.
	Set(ctx context.Context, visibility entity.MetricVisibility) error

	// GetByScene retrieves every stored toggle of a scene.
	GetByScene(ctx context.Context, scene string) ([]entity.MetricVisibility, error)
}
