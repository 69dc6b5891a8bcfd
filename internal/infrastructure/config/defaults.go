package config

import "github.com/bnema/cardboard/internal/domain/entity"

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	defaultWheelSensitivity = 0.001
	defaultTouchSensitivity = 0.01
	defaultPinchThreshold   = 5.0
	defaultFitPadding       = 50.0
	defaultFitDurationMs    = 1000

	defaultStartDate     = "2024-01-01"
	defaultEndDate       = "2024-12-31"
	defaultTotalDuration = 60.0
	defaultTargetFPS     = 30
)

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		UI: UIConfig{
			DragBorderMargin:          entity.DefaultBorderMargin,
			DragBorderWarningDistance: entity.DefaultBorderWarningDistance,
			ProximityThreshold:        entity.ProximityThreshold,
			RepulsionForce:            entity.RepulsionForce,
		},
		Canvas: CanvasConfig{
			WheelSensitivity: defaultWheelSensitivity,
			TouchSensitivity: defaultTouchSensitivity,
			PinchThreshold:   defaultPinchThreshold,
			FitPadding:       defaultFitPadding,
			FitDurationMs:    defaultFitDurationMs,
		},
		Animation: AnimationConfig{
			StartDate:            defaultStartDate,
			EndDate:              defaultEndDate,
			TotalDurationSeconds: defaultTotalDuration,
			TargetFPS:            defaultTargetFPS,
		},
		Scenes: []SceneConfig{
			{
				Name:  "traffic",
				Title: "Traffic",
				Metrics: []MetricConfig{
					{Name: "visitors", Label: "Visitors", File: "data/visitors.csv"},
					{Name: "pageviews", Label: "Page views", File: "data/pageviews.csv"},
				},
			},
			{
				Name:  "growth",
				Title: "Growth",
				Metrics: []MetricConfig{
					{Name: "signups", Label: "Sign-ups", File: "data/signups.csv"},
				},
			},
		},
	}
}
