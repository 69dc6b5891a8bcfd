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

type panelStateRepo struct {
	store port.KeyValueStore
}

// NewPanelStateRepository creates a panel state repository over store.
func NewPanelStateRepository(store port.KeyValueStore) repository.PanelStateRepository {
	return &panelStateRepo{store: store}
}

func (r *panelStateRepo) Get(ctx context.Context, id entity.PanelID) (*entity.PanelRecord, error) {
	data, err := r.store.Get(ctx, PanelKey(id))
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record entity.PanelRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("panel_id", string(id)).
			Msg("ignoring unreadable panel state")
		return nil, nil
	}
	return &record, nil
}

func (r *panelStateRepo) Save(ctx context.Context, id entity.PanelID, state entity.PanelState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode panel state: %w", err)
	}
	return r.store.Set(ctx, PanelKey(id), data)
}

func (r *panelStateRepo) Delete(ctx context.Context, id entity.PanelID) error {
	return r.store.Delete(ctx, PanelKey(id))
}

func (r *panelStateRepo) GetAll(ctx context.Context) (map[entity.PanelID]entity.PanelRecord, error) {
	keys, err := r.store.Keys(ctx, PanelKeyPrefix)
	if err != nil {
		return nil, err
	}

	out := make(map[entity.PanelID]entity.PanelRecord, len(keys))
	for _, key := range keys {
		id, ok := PanelIDFromKey(key)
		if !ok {
			continue
		}
		record, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if record != nil {
			out[id] = *record
		}
	}
	return out, nil
}
