package config

import (
	"fmt"
	"strings"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateCanvas(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateScenes(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateCanvas(config *Config) []string {
	var validationErrors []string
	if config.Canvas.WheelSensitivity > 1 {
		validationErrors = append(validationErrors, "canvas.wheel_sensitivity must be at most 1")
	}
	if config.Canvas.TouchSensitivity > 1 {
		validationErrors = append(validationErrors, "canvas.touch_sensitivity must be at most 1")
	}
	if config.Canvas.FitDurationMs > 10000 {
		validationErrors = append(validationErrors, "canvas.fit_duration_ms must be at most 10000")
	}
	return validationErrors
}

func validateAnimation(config *Config) []string {
	var validationErrors []string
	if config.Animation.TargetFPS > 240 {
		validationErrors = append(validationErrors, "animation.target_fps must be between 1 and 240")
	}
	if _, err := entity.NewTimeline(config.Animation.StartDate, config.Animation.EndDate, 0); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("animation dates are invalid: %v", err))
	}
	return validationErrors
}

func validateScenes(config *Config) []string {
	var validationErrors []string
	seenScenes := make(map[string]bool, len(config.Scenes))
	// Card ids join scene and metric names with "_", so distinct pairs can
	// still produce the same id.
	panelOwners := make(map[entity.PanelID]string)
	claim := func(id entity.PanelID, owner string) {
		if prev, ok := panelOwners[id]; ok {
			validationErrors = append(validationErrors, fmt.Sprintf("%s and %s both map to card id %q", prev, owner, id))
			return
		}
		panelOwners[id] = owner
	}

	for i, scene := range config.Scenes {
		if scene.Name == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("scenes[%d].name must not be empty", i))
			continue
		}
		if seenScenes[scene.Name] {
			validationErrors = append(validationErrors, fmt.Sprintf("scenes[%d].name %q is duplicated", i, scene.Name))
			continue
		}
		seenScenes[scene.Name] = true

		seenMetrics := make(map[string]bool, len(scene.Metrics))
		for j, metric := range scene.Metrics {
			if metric.Name == "" {
				validationErrors = append(validationErrors, fmt.Sprintf("scenes[%d].metrics[%d].name must not be empty", i, j))
				continue
			}
			if metric.Name == entity.LegendMetric {
				validationErrors = append(validationErrors, fmt.Sprintf("scenes[%d].metrics[%d].name %q is reserved for the scene legend", i, j, metric.Name))
				continue
			}
			if seenMetrics[metric.Name] {
				validationErrors = append(validationErrors, fmt.Sprintf("scenes[%d].metrics[%d].name %q is duplicated", i, j, metric.Name))
				continue
			}
			seenMetrics[metric.Name] = true
			key := entity.MetricKey{Scene: scene.Name, Metric: metric.Name}
			claim(key.PanelID(), fmt.Sprintf("scenes[%d].metrics[%d]", i, j))
		}
		claim(entity.LegendPanelID(scene.Name), fmt.Sprintf("scenes[%d] legend", i))
	}
	return validationErrors
}
