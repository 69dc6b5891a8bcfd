package entity

import "fmt"

// MetricKey identifies one metric of one scene.
type MetricKey struct {
	Scene  string
	Metric string
}

// String returns "scene/metric".
func (k MetricKey) String() string {
	return fmt.Sprintf("%s/%s", k.Scene, k.Metric)
}

// LegendMetric is the metric segment of legend card ids. It is reserved and
// cannot name a real metric.
const LegendMetric = "legend"

// PanelID returns the id of the card showing k: "scene_metric".
func (k MetricKey) PanelID() PanelID {
	return PanelID(k.Scene + "_" + k.Metric)
}

// LegendPanelID returns the id of the legend card of a scene.
func LegendPanelID(scene string) PanelID {
	return MetricKey{Scene: scene, Metric: LegendMetric}.PanelID()
}

// MetricVisibility is the visibility toggle of a metric.
// Metrics without a stored toggle are visible.
type MetricVisibility struct {
	Key     MetricKey
	Visible bool
}
