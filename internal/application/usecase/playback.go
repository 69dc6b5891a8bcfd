package usecase

import (
	"time"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// Playback is the play/pause clock that drives the timeline.
// It is not goroutine-safe; it lives on the frame loop.
type Playback struct {
	timeline entity.Timeline
	start    time.Time
	paused   bool
	// pausedAt is the elapsed time frozen while paused.
	pausedAt time.Duration
	complete bool
}

// NewPlayback starts playing the timeline at now.
func NewPlayback(timeline entity.Timeline, now time.Time) *Playback {
	return &Playback{timeline: timeline, start: now}
}

// Timeline returns the timeline being played.
func (p *Playback) Timeline() entity.Timeline {
	return p.timeline
}

// IsPaused reports whether the clock is paused.
func (p *Playback) IsPaused() bool {
	return p.paused
}

// TogglePause pauses a running clock or resumes a paused one where it stopped.
func (p *Playback) TogglePause(now time.Time) {
	if p.paused {
		p.paused = false
		p.complete = false
		p.start = now.Add(-p.pausedAt)
		return
	}
	p.paused = true
	p.pausedAt = now.Sub(p.start)
}

// Rewind restarts from day 0 and resumes playback.
func (p *Playback) Rewind(now time.Time) {
	p.start = now
	p.pausedAt = 0
	p.complete = false
	if p.paused {
		p.TogglePause(now)
	}
}

// Elapsed returns the playback time reached at now.
func (p *Playback) Elapsed(now time.Time) time.Duration {
	if p.paused {
		return p.pausedAt
	}
	return now.Sub(p.start)
}

// ExactDay returns the fractional day reached at now.
func (p *Playback) ExactDay(now time.Time) float64 {
	day := p.timeline.ExactDay(p.Elapsed(now))
	if !p.paused && day >= float64(p.timeline.TotalDays()-1) {
		p.complete = true
	}
	return day
}

// CurrentDay returns the whole day reached at now.
func (p *Playback) CurrentDay(now time.Time) int {
	return int(p.ExactDay(now))
}

// CurrentDate returns the calendar date reached at now.
func (p *Playback) CurrentDate(now time.Time) time.Time {
	return p.timeline.DateAt(p.CurrentDay(now))
}

// IsComplete reports whether the last day was reached while playing.
func (p *Playback) IsComplete() bool {
	return p.complete
}
