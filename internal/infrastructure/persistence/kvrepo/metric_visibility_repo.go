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

type metricVisibilityRepo struct {
	store port.KeyValueStore
}

// NewMetricVisibilityRepository creates a visibility repository over store.
func NewMetricVisibilityRepository(store port.KeyValueStore) repository.MetricVisibilityRepository {
	return &metricVisibilityRepo{store: store}
}

func (r *metricVisibilityRepo) Get(ctx context.Context, key entity.MetricKey) (*entity.MetricVisibility, error) {
	data, err := r.store.Get(ctx, VisibilityKey(key))
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var visible bool
	if err := json.Unmarshal(data, &visible); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("metric", key.String()).Msg("ignoring unreadable metric visibility")
		return nil, nil
	}
	return &entity.MetricVisibility{Key: key, Visible: visible}, nil
}

func (r *metricVisibilityRepo) Set(ctx context.Context, visibility entity.MetricVisibility) error {
	data, err := json.Marshal(visibility.Visible)
	if err != nil {
		return fmt.Errorf("failed to encode metric visibility: %w", err)
	}
	return r.store.Set(ctx, VisibilityKey(visibility.Key), data)
}

// GetByScene cannot split "<scene>_<metric>" keys unambiguously, so callers
// that know the metric names should prefer Get. Keys are attributed to the
// scene when they start with "<scene>_".
func (r *metricVisibilityRepo) GetByScene(ctx context.Context, scene string) ([]entity.MetricVisibility, error) {
	prefix := VisibilityKeyPrefix + scene + "_"
	keys, err := r.store.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]entity.MetricVisibility, 0, len(keys))
	for _, k := range keys {
		key := entity.MetricKey{Scene: scene, Metric: k[len(prefix):]}
		v, err := r.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if v != nil {
			out = append(out, *v)
		}
	}
	return out, nil
}
