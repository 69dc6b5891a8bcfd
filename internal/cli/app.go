// Package cli wires the cardboard command line: configuration, logging,
// the state database and the use cases shared by every command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/cardboard/internal/application/port"
	"github.com/bnema/cardboard/internal/application/usecase"
	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/domain/build"
	"github.com/bnema/cardboard/internal/infrastructure/cache"
	"github.com/bnema/cardboard/internal/infrastructure/config"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/kvrepo"
	"github.com/bnema/cardboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/cardboard/internal/logging"
)

// Options select how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogToFile forces logging to the rotating file, used while the
	// terminal UI owns stderr.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db    *sqlite.LazyDB
	Store port.KeyValueStore

	// Use cases
	PanelsUC     *usecase.ManagePanelStateUseCase
	CanvasUC     *usecase.ManageCanvasUseCase
	VisibilityUC *usecase.ManageMetricVisibilityUseCase
	ResetUC      *usecase.ResetStateUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration, sets up logging and prepares the lazily
// opened state database.
func NewApp(opts Options) (*App, error) {
	mgr, err := newManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	ctx, cleanup, err := newLoggerContext(cfg, opts.LogToFile)
	if err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)
	log.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("configuration loaded")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	store := cache.NewKVStore(sqlite.NewLazyKVStore(db), cache.DefaultCapacity)

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		Store:         store,
		PanelsUC:      usecase.NewManagePanelStateUseCase(kvrepo.NewPanelStateRepository(store)),
		CanvasUC:      usecase.NewManageCanvasUseCase(kvrepo.NewCanvasStateRepository(store)),
		VisibilityUC:  usecase.NewManageMetricVisibilityUseCase(kvrepo.NewMetricVisibilityRepository(store)),
		ResetUC:       usecase.NewResetStateUseCase(store),
		ctx:           ctx,
		logCleanup:    cleanup,
	}, nil
}

func newManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerWithFile(path)
	}
	return config.NewManager()
}

// newLoggerContext builds the logger described by cfg. Environment variables
// override the configured level and format.
func newLoggerContext(cfg *config.Config, forceFile bool) (context.Context, func(), error) {
	level := cfg.Logging.Level
	if env := os.Getenv(logging.EnvLogLevel); env != "" {
		level = env
	}
	format := cfg.Logging.Format
	if env := os.Getenv(logging.EnvLogFormat); env != "" {
		format = env
	}

	var out io.Writer = os.Stderr
	cleanup := func() {}
	if forceFile || cfg.Logging.EnableFileLog {
		file, err := logging.NewRotatingFile(logging.RotateOptions{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Compress:   true,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
		cleanup = func() { _ = file.Close() }
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     format,
		TimeFormat: "15:04:05",
		Output:     out,
	})
	return logging.WithContext(context.Background(), logger), cleanup, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns the path of the state database.
func (a *App) DatabasePath() string {
	return a.db.Path()
}
