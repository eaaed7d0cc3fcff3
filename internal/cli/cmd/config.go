package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/hoverpane/internal/cli/styles"
	"github.com/bnema/hoverpane/internal/infrastructure/config"
)

var configKeysJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the configuration lives, list every key and regenerate the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys with defaults",
	RunE:  runConfigKeys,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema next to the config file",
	Long: `Regenerate config.schema.json for editor completion and validation.

Reference it from config.toml with:
  #:schema ./config.schema.json`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configSchemaCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := app.ConfigFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}
	fmt.Println(renderer.RenderConfigInfo(path))
	return nil
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	keys := config.NewSchemaProvider().GetSchema()

	if configKeysJSON {
		out, err := renderer.RenderJSON(keys)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Println(renderer.Render(keys))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	dir := filepath.Dir(app.ConfigFile)
	if app.ConfigFile == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}
	path, err := config.WriteSchemaFile(dir)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}
	fmt.Println(renderer.RenderSchemaWritten(path))
	return nil
}
