package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, falling back to the working directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	return &Manager{viper: v, configFile: filepath.Join(configDir, "config.toml")}, nil
}

// NewManagerWithFile creates a manager bound to an explicit config file.
// The format follows the file extension (toml, json or yaml).
func NewManagerWithFile(path string) (*Manager, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	v := newViper()
	v.SetConfigFile(abs)
	return &Manager{viper: v, configFile: abs}, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	// CARDBOARD_UI_DRAG_BORDER_MARGIN, CARDBOARD_LOGGING_LEVEL, ...
	v.SetEnvPrefix("CARDBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Same variables the logger reads before config is loaded.
	_ = v.BindEnv("logging.level", "CARDBOARD_LOG_LEVEL")
	_ = v.BindEnv("logging.format", "CARDBOARD_LOG_FORMAT")
	return v
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format and permissions", m.GetConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	m.viper.SetConfigFile(m.configFile)
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

// normalizeConfig replaces zero or negative tuning values with defaults, the
// same way an absent key would behave.
func normalizeConfig(config *Config) {
	defaults := DefaultConfig()

	orDefault := func(v *float64, def float64) {
		if *v <= 0 {
			*v = def
		}
	}
	orDefault(&config.UI.DragBorderMargin, defaults.UI.DragBorderMargin)
	orDefault(&config.UI.DragBorderWarningDistance, defaults.UI.DragBorderWarningDistance)
	orDefault(&config.UI.ProximityThreshold, defaults.UI.ProximityThreshold)
	orDefault(&config.UI.RepulsionForce, defaults.UI.RepulsionForce)
	orDefault(&config.Canvas.WheelSensitivity, defaults.Canvas.WheelSensitivity)
	orDefault(&config.Canvas.TouchSensitivity, defaults.Canvas.TouchSensitivity)
	orDefault(&config.Animation.TotalDurationSeconds, defaults.Animation.TotalDurationSeconds)

	if config.Canvas.PinchThreshold < 0 {
		config.Canvas.PinchThreshold = defaults.Canvas.PinchThreshold
	}
	if config.Canvas.FitPadding < 0 {
		config.Canvas.FitPadding = defaults.Canvas.FitPadding
	}
	if config.Canvas.FitDurationMs < 0 {
		config.Canvas.FitDurationMs = defaults.Canvas.FitDurationMs
	}
	if config.Animation.TargetFPS <= 0 {
		config.Animation.TargetFPS = defaults.Animation.TargetFPS
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaults.Logging.Level
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaults.Logging.Format
	}
	if config.Logging.MaxSizeMB <= 0 {
		config.Logging.MaxSizeMB = defaults.Logging.MaxSizeMB
	}

	for i := range config.Scenes {
		scene := &config.Scenes[i]
		scene.Name = strings.TrimSpace(scene.Name)
		if scene.Title == "" {
			scene.Title = scene.Name
		}
		for j := range scene.Metrics {
			metric := &scene.Metrics[j]
			metric.Name = strings.TrimSpace(metric.Name)
			if metric.Label == "" {
				metric.Label = metric.Name
			}
		}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Scenes = append([]SceneConfig(nil), m.config.Scenes...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Dir(m.configFile)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", m.configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: database.path and logging.log_dir are resolved in Load()
	m.setLoggingDefaults(defaults)
	m.setUIDefaults(defaults)
	m.setCanvasDefaults(defaults)
	m.setAnimationDefaults(defaults)
	m.viper.SetDefault("scenes", defaults.Scenes)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setUIDefaults(defaults *Config) {
	m.viper.SetDefault("ui.drag_border_margin", defaults.UI.DragBorderMargin)
	m.viper.SetDefault("ui.drag_border_warning_distance", defaults.UI.DragBorderWarningDistance)
	m.viper.SetDefault("ui.proximity_threshold", defaults.UI.ProximityThreshold)
	m.viper.SetDefault("ui.repulsion_force", defaults.UI.RepulsionForce)
}

func (m *Manager) setCanvasDefaults(defaults *Config) {
	m.viper.SetDefault("canvas.wheel_sensitivity", defaults.Canvas.WheelSensitivity)
	m.viper.SetDefault("canvas.touch_sensitivity", defaults.Canvas.TouchSensitivity)
	m.viper.SetDefault("canvas.pinch_threshold", defaults.Canvas.PinchThreshold)
	m.viper.SetDefault("canvas.fit_padding", defaults.Canvas.FitPadding)
	m.viper.SetDefault("canvas.fit_duration_ms", defaults.Canvas.FitDurationMs)
}

func (m *Manager) setAnimationDefaults(defaults *Config) {
	m.viper.SetDefault("animation.start_date", defaults.Animation.StartDate)
	m.viper.SetDefault("animation.end_date", defaults.Animation.EndDate)
	m.viper.SetDefault("animation.total_duration_seconds", defaults.Animation.TotalDurationSeconds)
	m.viper.SetDefault("animation.target_fps", defaults.Animation.TargetFPS)
}
