package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/cardboard/internal/cli/styles"
	"github.com/bnema/cardboard/internal/infrastructure/config"
)

var configSchemaDir string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  `Show where configuration and state live, print the effective settings or write the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file and state database locations",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of config.toml",
	Long: `Write config.schema.json for editor completion and validation.

The schema goes next to config.toml unless --out names another directory.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
	configSchemaCmd.Flags().StringVarP(&configSchemaDir, "out", "o", "", "directory to write the schema to")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigManager.GetConfigFile()
	_, err := os.Stat(path)
	fmt.Print(renderer.RenderConfigInfo(path, err == nil))
	fmt.Print(renderer.RenderDatabaseInfo(app.DatabasePath()))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.Marshal(app.Config)
	if err != nil {
		fmt.Println(styles.NewConfigRenderer(app.Theme).RenderError(err))
		return nil
	}
	fmt.Print(string(data))
	return nil
}

// runConfigSchema runs without the app so a broken config file can still
// be checked against a fresh schema.
func runConfigSchema(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	dir := configSchemaDir
	if dir == "" {
		var err error
		dir, err = config.GetConfigDir()
		if err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	if err := config.GenerateSchemaFile(dir); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Print(renderer.RenderSchemaWritten(filepath.Join(dir, "config.schema.json")))
	return nil
}
