package kvrepo_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/bnema/cardboard/internal/application/port/mocks"
	"github.com/bnema/cardboard/internal/domain/entity"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/kvrepo"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/memory"
	"github.com/bnema/cardboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestPanelStateRepository_RoundTrip(t *testing.T) {
	ctx := testContext()
	store := memory.NewKVStore()
	repo := kvrepo.NewPanelStateRepository(store)

	got, err := repo.Get(ctx, "sales")
	require.NoError(t, err)
	assert.Nil(t, got)

	state := entity.PanelState{
		Position: entity.Point{X: 12, Y: 34},
		Size:     entity.Size{Width: 300, Height: 220},
		IsPinned: true,
	}
	require.NoError(t, repo.Save(ctx, "sales", state))

	raw, err := store.Get(ctx, "card_sales")
	require.NoError(t, err)
	assert.JSONEq(t, `{"position":{"x":12,"y":34},"size":{"width":300,"height":220},"isPinned":true}`, string(raw))

	got, err = repo.Get(ctx, "sales")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, state, got.Merge(entity.DefaultPanelState()))
}

func TestPanelStateRepository_CorruptBlobIsIgnored(t *testing.T) {
	ctx := testContext()
	store := memory.NewKVStore()
	require.NoError(t, store.Set(ctx, "card_broken", []byte("{not json")))
	require.NoError(t, store.Set(ctx, "card_ok", []byte(`{"isPinned":true}`)))
	repo := kvrepo.NewPanelStateRepository(store)

	got, err := repo.Get(ctx, "broken")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all["ok"].IsPinned)
	assert.True(t, *all["ok"].IsPinned)
	assert.Nil(t, all["ok"].Position)
}

func TestPanelStateRepository_StoreErrorPropagates(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockKeyValueStore(t)
	store.EXPECT().Get(mock.Anything, "card_x").Return(nil, errors.New("disk gone"))

	_, err := kvrepo.NewPanelStateRepository(store).Get(ctx, "x")
	assert.EqualError(t, err, "disk gone")
}

func TestCanvasStateRepository(t *testing.T) {
	ctx := testContext()
	store := memory.NewKVStore()
	repo := kvrepo.NewCanvasStateRepository(store)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, kvrepo.CanvasTransformKey, []byte(`{"panOffsetX":15}`)))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.CanvasTransform{PanOffsetX: 15, ZoomScale: 1}, *got)

	want := entity.CanvasTransform{PanOffsetX: -4, PanOffsetY: 8, ZoomScale: 2.5}
	require.NoError(t, repo.Save(ctx, want))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestMetricVisibilityRepository(t *testing.T) {
	ctx := testContext()
	store := memory.NewKVStore()
	repo := kvrepo.NewMetricVisibilityRepository(store)
	key := entity.MetricKey{Scene: "traffic", Metric: "visitors"}

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, entity.MetricVisibility{Key: key, Visible: false}))
	raw, err := store.Get(ctx, "metric_visibility_traffic_visitors")
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))

	got, err = repo.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Visible)

	byScene, err := repo.GetByScene(ctx, "traffic")
	require.NoError(t, err)
	assert.Equal(t, []entity.MetricVisibility{{Key: key, Visible: false}}, byScene)
}

func TestPanelIDFromKey(t *testing.T) {
	id, ok := kvrepo.PanelIDFromKey("card_traffic_visitors")
	assert.True(t, ok)
	assert.Equal(t, entity.PanelID("traffic_visitors"), id)

	_, ok = kvrepo.PanelIDFromKey("card_")
	assert.False(t, ok)
	_, ok = kvrepo.PanelIDFromKey("canvas_transform")
	assert.False(t, ok)
}
