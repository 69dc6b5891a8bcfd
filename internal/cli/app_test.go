package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cardboard/internal/domain/entity"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("CARDBOARD_LOG_LEVEL", "")
	t.Setenv("CARDBOARD_LOG_FORMAT", "")
	return root
}

func TestNewApp_DefaultLocations(t *testing.T) {
	root := isolateXDG(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Equal(t, filepath.Join(root, "config", "cardboard", "config.toml"), app.ConfigManager.GetConfigFile())
	assert.FileExists(t, app.ConfigManager.GetConfigFile())
	assert.Equal(t, filepath.Join(root, "data", "cardboard"), filepath.Dir(app.DatabasePath()))
	assert.NotNil(t, app.Ctx())
	assert.NotNil(t, app.Theme)

	// The database is opened on first use only.
	assert.NoFileExists(t, app.DatabasePath())
}

func TestNewApp_PersistsThroughSQLite(t *testing.T) {
	isolateXDG(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)

	state := entity.DefaultPanelState()
	state.Position = entity.Point{X: 120, Y: 80}
	require.NoError(t, app.PanelsUC.Save(app.Ctx(), "traffic_visitors", state))
	require.NoError(t, app.Close())

	app, err = NewApp(Options{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	stored, err := app.PanelsUC.List(app.Ctx())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entity.PanelID("traffic_visitors"), stored[0].ID)
	assert.Equal(t, entity.Point{X: 120, Y: 80}, stored[0].State.Position)

	n, err := app.ResetUC.Execute(app.Ctx())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewApp_ExplicitConfigFileAndFileLogging(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "custom.toml")
	logDir := filepath.Join(root, "logs")
	require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "debug"
log_dir = "`+logDir+`"

[ui]
drag_border_margin = 12.0
`), 0o600))

	app, err := NewApp(Options{ConfigFile: path, LogToFile: true})
	require.NoError(t, err)

	assert.Equal(t, path, app.ConfigManager.GetConfigFile())
	assert.Equal(t, 12.0, app.Config.UI.DragBorderMargin)

	require.NoError(t, app.Close())
	assert.FileExists(t, filepath.Join(logDir, "cardboard.log"))
}
