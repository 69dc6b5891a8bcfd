package ui

import (
	"fmt"
	"strings"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// MetricContent is the body of a metric card. Chart drawing happens in the
// renderer; the card only knows what it shows.
type MetricContent struct {
	Key   entity.MetricKey
	Label string
	File  string
}

func (c MetricContent) String() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Key.Metric
}

// LegendContent is the body of a scene legend card.
type LegendContent struct {
	Scene   string
	Entries []string
}

func (c LegendContent) String() string {
	return fmt.Sprintf("%s: %s", c.Scene, strings.Join(c.Entries, ", "))
}
