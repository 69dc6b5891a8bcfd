package repository

import (
	"context"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// CanvasStateRepository persists the global canvas transform.
type CanvasStateRepository interface {
	// Get retrieves the stored transform.
	// Returns nil if nothing is stored or the stored blob is unreadable.
	Get(ctx context.Context) (*entity.CanvasTransform, error)

	// Save stores the transform.
	Save(ctx context.Context, transform entity.CanvasTransform) error
}
