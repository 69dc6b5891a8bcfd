package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/domain/repository"
	"github.com/bnema/cardboard/internal/logging"
)

type canvasStateRepo struct {
	store port.KeyValueStore
}

// NewCanvasStateRepository creates a canvas transform repository over store.
func NewCanvasStateRepository(store port.KeyValueStore) repository.CanvasStateRepository {
	return &canvasStateRepo{store: store}
}

// Get returns the stored transform normalized: a missing or zero zoom
// becomes 1 and missing offsets become 0.
func (r *canvasStateRepo) Get(ctx context.Context) (*entity.CanvasTransform, error) {
	data, err := r.store.Get(ctx, CanvasTransformKey)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var t entity.CanvasTransform
	if err := json.Unmarshal(data, &t); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("ignoring unreadable canvas transform")
		return nil, nil
	}
	t = t.Normalize()
	return &t, nil
}

func (r *canvasStateRepo) Save(ctx context.Context, transform entity.CanvasTransform) error {
	data, err := json.Marshal(transform)
	if err != nil {
		return fmt.Errorf("failed to encode canvas transform: %w", err)
	}
	return r.store.Set(ctx, CanvasTransformKey, data)
}
