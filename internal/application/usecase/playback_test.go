package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/domain/entity"
)

// ten days over ten seconds: one second per day.
func tenDays(t *testing.T) entity.Timeline {
	t.Helper()
	tl, err := entity.NewTimeline("2024-01-01", "2024-01-10", 10*time.Second)
	require.NoError(t, err)
	return tl
}

func TestPlayback_Advances(t *testing.T) {
	t0 := time.Unix(1000, 0)
	p := usecase.NewPlayback(tenDays(t), t0)

	assert.Equal(t, 0, p.CurrentDay(t0))
	assert.InDelta(t, 2.5, p.ExactDay(t0.Add(2500*time.Millisecond)), 1e-9)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), p.CurrentDate(t0.Add(3*time.Second)))
	assert.False(t, p.IsComplete())
}

func TestPlayback_CompletesOnLastDay(t *testing.T) {
	t0 := time.Unix(1000, 0)
	p := usecase.NewPlayback(tenDays(t), t0)

	assert.Equal(t, 9.0, p.ExactDay(t0.Add(time.Minute)))
	assert.True(t, p.IsComplete())
}

func TestPlayback_PauseFreezesAndResumes(t *testing.T) {
	t0 := time.Unix(1000, 0)
	p := usecase.NewPlayback(tenDays(t), t0)

	p.TogglePause(t0.Add(3 * time.Second))
	require.True(t, p.IsPaused())
	assert.Equal(t, 3, p.CurrentDay(t0.Add(8*time.Second)))

	p.TogglePause(t0.Add(8 * time.Second))
	require.False(t, p.IsPaused())
	assert.Equal(t, 4, p.CurrentDay(t0.Add(9*time.Second)))
}

func TestPlayback_PausedNeverCompletes(t *testing.T) {
	t0 := time.Unix(1000, 0)
	p := usecase.NewPlayback(tenDays(t), t0)

	p.TogglePause(t0.Add(20 * time.Second))
	assert.Equal(t, 9.0, p.ExactDay(t0.Add(30*time.Second)))
	assert.False(t, p.IsComplete())
}

func TestPlayback_RewindResumes(t *testing.T) {
	t0 := time.Unix(1000, 0)
	p := usecase.NewPlayback(tenDays(t), t0)
	p.ExactDay(t0.Add(20 * time.Second))
	p.TogglePause(t0.Add(20 * time.Second))

	now := t0.Add(25 * time.Second)
	p.Rewind(now)

	assert.False(t, p.IsPaused())
	assert.False(t, p.IsComplete())
	assert.Equal(t, 0, p.CurrentDay(now))
	assert.Equal(t, 2, p.CurrentDay(now.Add(2*time.Second)))
}
