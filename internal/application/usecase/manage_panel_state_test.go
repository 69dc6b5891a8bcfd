package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/domain/entity"
	repomocks "github.com/bnema/cardboard/internal/domain/repository/mocks"
)

func TestManagePanelState_Load_MergesOverDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)

	pinned := true
	repo.EXPECT().Get(mock.Anything, entity.PanelID("visitors")).Return(&entity.PanelRecord{
		Position: &entity.Point{X: 300, Y: 40},
		IsPinned: &pinned,
	}, nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	defaults := entity.PanelState{
		Position: entity.Point{X: 20, Y: 20},
		Size:     entity.Size{Width: 400, Height: 300},
	}

	state := uc.Load(ctx, "visitors", defaults)

	assert.Equal(t, entity.Point{X: 300, Y: 40}, state.Position)
	assert.Equal(t, entity.Size{Width: 400, Height: 300}, state.Size)
	assert.True(t, state.IsPinned)
}

func TestManagePanelState_Load_MissingUsesDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.PanelID("new")).Return(nil, nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	state := uc.Load(ctx, "new", entity.DefaultPanelState())

	assert.Equal(t, entity.DefaultPanelState(), state)
}

func TestManagePanelState_Load_ErrorFallsBack(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.PanelID("broken")).Return(nil, errors.New("disk gone"))

	uc := usecase.NewManagePanelStateUseCase(repo)
	state := uc.Load(ctx, "broken", entity.DefaultPanelState())

	assert.Equal(t, entity.DefaultPanelState(), state)
}

func TestManagePanelState_Load_ClampsTinySize(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.PanelID("tiny")).Return(&entity.PanelRecord{
		Size: &entity.Size{Width: 10, Height: 10},
	}, nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	state := uc.Load(ctx, "tiny", entity.DefaultPanelState())

	assert.Equal(t, entity.Size{Width: entity.MinPanelWidth, Height: entity.MinPanelHeight}, state.Size)
}

func TestManagePanelState_Save_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Save(mock.Anything, entity.PanelID("a"), mock.Anything).Return(errors.New("locked"))

	uc := usecase.NewManagePanelStateUseCase(repo)
	err := uc.Save(ctx, "a", entity.DefaultPanelState())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
	assert.Contains(t, err.Error(), "panel a")
}

func TestManagePanelState_SetPinned(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.PanelID("a")).Return(&entity.PanelRecord{
		Position: &entity.Point{X: 5, Y: 6},
	}, nil)
	repo.EXPECT().Save(mock.Anything, entity.PanelID("a"), mock.MatchedBy(func(s entity.PanelState) bool {
		return s.IsPinned && s.Position == entity.Point{X: 5, Y: 6}
	})).Return(nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	state, err := uc.SetPinned(ctx, "a", true)

	require.NoError(t, err)
	assert.True(t, state.IsPinned)
}

func TestManagePanelState_List_SortedByID(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().GetAll(mock.Anything).Return(map[entity.PanelID]entity.PanelRecord{
		"zeta":  {},
		"alpha": {Position: &entity.Point{X: 1, Y: 2}},
	}, nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	list, err := uc.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.PanelID("alpha"), list[0].ID)
	assert.Equal(t, entity.Point{X: 1, Y: 2}, list[0].State.Position)
	assert.Equal(t, entity.PanelID("zeta"), list[1].ID)
	assert.Equal(t, entity.DefaultPanelState(), list[1].State)
}

func TestManagePanelState_Forget(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockPanelStateRepository(t)
	repo.EXPECT().Delete(mock.Anything, entity.PanelID("a")).Return(nil)

	uc := usecase.NewManagePanelStateUseCase(repo)
	require.NoError(t, uc.Forget(ctx, "a"))
}
