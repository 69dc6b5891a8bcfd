// Package kvrepo implements the domain repositories as JSON blobs in a
// port.KeyValueStore.
package kvrepo

import (
	"strings"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// Storage keys.
const (
	PanelKeyPrefix      = "card_"
	CanvasTransformKey  = "canvas_transform"
	VisibilityKeyPrefix = "metric_visibility_"
)

// PanelKey returns the storage key of a panel.
func PanelKey(id entity.PanelID) string {
	return PanelKeyPrefix + string(id)
}

// PanelIDFromKey extracts the panel id from a storage key.
func PanelIDFromKey(key string) (entity.PanelID, bool) {
	if !strings.HasPrefix(key, PanelKeyPrefix) || len(key) == len(PanelKeyPrefix) {
		return "", false
	}
	return entity.PanelID(strings.TrimPrefix(key, PanelKeyPrefix)), true
}

// VisibilityKey returns the storage key of a metric toggle.
func VisibilityKey(key entity.MetricKey) string {
	return VisibilityKeyPrefix + key.Scene + "_" + key.Metric
}
