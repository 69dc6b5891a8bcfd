package entity

import (
	"errors"
	"time"
)

// DateLayout is the calendar date format used by timelines.
const DateLayout = "2006-01-02"

// ErrInvalidTimeline is returned for timelines that end before they start.
var ErrInvalidTimeline = errors.New("timeline end date is before start date")

// Timeline maps a calendar range onto a playback duration.
type Timeline struct {
	Start    time.Time
	End      time.Time
	Duration time.Duration
}

// NewTimeline parses start and end dates (YYYY-MM-DD).
// A non-positive duration defaults to 60 seconds.
func NewTimeline(start, end string, duration time.Duration) (Timeline, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return Timeline{}, err
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return Timeline{}, err
	}
	if e.Before(s) {
		return Timeline{}, ErrInvalidTimeline
	}
	if duration <= 0 {
		duration = 60 * time.Second
	}
	return Timeline{Start: s, End: e, Duration: duration}, nil
}

// TotalDays is the number of calendar days covered, both ends included.
func (t Timeline) TotalDays() int {
	return int(t.End.Sub(t.Start).Hours()/24) + 1
}

// DayDuration is how long one day lasts during playback.
func (t Timeline) DayDuration() time.Duration {
	days := t.TotalDays()
	if days <= 0 {
		return t.Duration
	}
	return t.Duration / time.Duration(days)
}

// ExactDay returns the fractional day index reached after elapsed,
// capped at the last day.
func (t Timeline) ExactDay(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	perDay := t.DayDuration()
	if perDay <= 0 {
		return float64(t.TotalDays() - 1)
	}
	day := float64(elapsed) / float64(perDay)
	last := float64(t.TotalDays() - 1)
	if day > last {
		return last
	}
	return day
}

// DateAt returns the calendar date of a day index.
func (t Timeline) DateAt(day int) time.Time {
	return t.Start.AddDate(0, 0, day)
}
