package config

// Config represents the complete configuration for cardboard.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" json:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging" toml:"logging"`
	// UI holds the card interaction tuning knobs.
	UI UIConfig `mapstructure:"ui" json:"ui" toml:"ui"`
	// Canvas controls pan and zoom gestures.
	Canvas CanvasConfig `mapstructure:"canvas" json:"canvas" toml:"canvas"`
	// Animation describes the playback timeline.
	Animation AnimationConfig `mapstructure:"animation" json:"animation" toml:"animation"`
	// Scenes lists the scenes and the metrics drawn in each of them.
	Scenes []SceneConfig `mapstructure:"scenes" json:"scenes" toml:"scenes"`
}

// DatabaseConfig locates the state database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/cardboard/cardboard.sqlite
	Path string `mapstructure:"path" json:"path,omitempty" toml:"path" jsonschema:"description=SQLite file holding card and canvas state"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog sends logs to a rotating file instead of stderr.
	// The interactive view always logs to the file.
	EnableFileLog bool   `mapstructure:"enable_file_log" json:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" json:"log_dir,omitempty" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" json:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" json:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
}

// UIConfig tunes card dragging feedback. Zero or negative values fall back
// to the defaults.
type UIConfig struct {
	// DragBorderMargin is the inset from the viewport edge, in pixels.
	DragBorderMargin float64 `mapstructure:"drag_border_margin" json:"drag_border_margin" toml:"drag_border_margin" jsonschema:"minimum=0,default=10"`
	// DragBorderWarningDistance is how far from the margin the edge warning starts.
	DragBorderWarningDistance float64 `mapstructure:"drag_border_warning_distance" json:"drag_border_warning_distance" toml:"drag_border_warning_distance" jsonschema:"minimum=0,default=30"`
	// ProximityThreshold is the card distance that triggers highlight and repulsion.
	ProximityThreshold float64 `mapstructure:"proximity_threshold" json:"proximity_threshold" toml:"proximity_threshold" jsonschema:"minimum=0,default=20"`
	// RepulsionForce is how far a neighbour is pushed per frame.
	RepulsionForce float64 `mapstructure:"repulsion_force" json:"repulsion_force" toml:"repulsion_force" jsonschema:"minimum=0,default=5"`
}

// CanvasConfig controls pan and zoom gestures.
type CanvasConfig struct {
	WheelSensitivity float64 `mapstructure:"wheel_sensitivity" json:"wheel_sensitivity" toml:"wheel_sensitivity" jsonschema:"exclusiveMinimum=0,default=0.001"`
	TouchSensitivity float64 `mapstructure:"touch_sensitivity" json:"touch_sensitivity" toml:"touch_sensitivity" jsonschema:"exclusiveMinimum=0,default=0.01"`
	// PinchThreshold is the pinch distance change, in pixels, below which a
	// two finger gesture pans instead of zooming.
	PinchThreshold float64 `mapstructure:"pinch_threshold" json:"pinch_threshold" toml:"pinch_threshold" jsonschema:"minimum=0,default=5"`
	// FitPadding surrounds the cards when zooming to fit.
	FitPadding    float64 `mapstructure:"fit_padding" json:"fit_padding" toml:"fit_padding" jsonschema:"minimum=0,default=50"`
	FitDurationMs int     `mapstructure:"fit_duration_ms" json:"fit_duration_ms" toml:"fit_duration_ms" jsonschema:"minimum=0,default=1000"`
}

// AnimationConfig describes the playback timeline.
type AnimationConfig struct {
	StartDate            string  `mapstructure:"start_date" json:"start_date" toml:"start_date" jsonschema:"format=date"`
	EndDate              string  `mapstructure:"end_date" json:"end_date" toml:"end_date" jsonschema:"format=date"`
	TotalDurationSeconds float64 `mapstructure:"total_duration_seconds" json:"total_duration_seconds" toml:"total_duration_seconds" jsonschema:"exclusiveMinimum=0,default=60"`
	TargetFPS            int     `mapstructure:"target_fps" json:"target_fps" toml:"target_fps" jsonschema:"minimum=1,maximum=240,default=30"`
}

// SceneConfig is one scene of the visualisation.
type SceneConfig struct {
	Name    string         `mapstructure:"name" json:"name" toml:"name"`
	Title   string         `mapstructure:"title" json:"title" toml:"title"`
	Metrics []MetricConfig `mapstructure:"metrics" json:"metrics" toml:"metrics"`
}

// MetricConfig is one metric drawn in a scene.
type MetricConfig struct {
	Name  string `mapstructure:"name" json:"name" toml:"name"`
	Label string `mapstructure:"label" json:"label" toml:"label"`
	// File is the CSV data source. Loading it is outside this program.
	File string `mapstructure:"file" json:"file,omitempty" toml:"file"`
}
