package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricKey_PanelID(t *testing.T) {
	key := MetricKey{Scene: "traffic", Metric: "visitors"}

	assert.Equal(t, PanelID("traffic_visitors"), key.PanelID())
	assert.Equal(t, "traffic/visitors", key.String())
	assert.Equal(t, PanelID("traffic_legend"), LegendPanelID("traffic"))
}
