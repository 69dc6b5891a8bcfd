package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline(t *testing.T) {
	tl, err := NewTimeline("2024-01-01", "2024-12-31", 366*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 366, tl.TotalDays())
	assert.Equal(t, time.Second, tl.DayDuration())
	assert.Equal(t, 0.0, tl.ExactDay(0))
	assert.InDelta(t, 10.5, tl.ExactDay(10500*time.Millisecond), 1e-9)
	assert.Equal(t, 365.0, tl.ExactDay(time.Hour))
	assert.Equal(t, "2024-02-01", tl.DateAt(31).Format(DateLayout))
}

func TestNewTimeline_Errors(t *testing.T) {
	_, err := NewTimeline("2024-02-01", "2024-01-01", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidTimeline)

	_, err = NewTimeline("yesterday", "2024-01-01", time.Minute)
	assert.Error(t, err)

	tl, err := NewTimeline("2024-01-01", "2024-01-01", 0)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, tl.Duration)
	assert.Equal(t, 1, tl.TotalDays())
}
