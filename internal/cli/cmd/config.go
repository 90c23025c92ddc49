package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/overpane/internal/cli/styles"
	"github.com/bnema/overpane/internal/config"
)

var (
	configShowTOML    bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, print and initialize the configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location and whether it exists",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and
OVERPANE_* environment variables are merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of config.toml. With --write the schema is saved
next to the config file for editor completion.`,
	RunE: runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Long:  `Write config.toml with every default value. An existing file is never touched.`,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().BoolVar(&configShowTOML, "toml", false, "print as TOML instead of styled sections")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file into the config directory")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFile()
	_, statErr := os.Stat(path)

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(path, statErr == nil))
	if app.LoadErr != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(app.LoadErr))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)
	if app.LoadErr != nil {
		fmt.Fprint(out, renderer.RenderError(app.LoadErr))
	}

	if configShowTOML {
		data, err := toml.Marshal(app.Config)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	// With a load error the settings tree holds the rejected values, so
	// print the defaults actually in use instead.
	settings := app.Manager.Settings()
	if app.LoadErr != nil {
		var err error
		if settings, err = configSettings(app.Config); err != nil {
			return err
		}
	}

	renderSettings(out, renderer, settings)
	return nil
}

// configSettings converts cfg into the same nested map shape viper uses.
func configSettings(cfg *config.Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var settings map[string]any
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return settings, nil
}

// renderSettings prints each top-level table as a section with its keys
// sorted.
func renderSettings(out io.Writer, renderer *styles.ConfigRenderer, settings map[string]any) {
	sections := make([]string, 0, len(settings))
	for name := range settings {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		table, ok := settings[name].(map[string]any)
		if !ok {
			fmt.Fprint(out, renderer.RenderKey(name, settings[name]))
			continue
		}
		fmt.Fprint(out, renderer.RenderSection(name))

		keys := make([]string, 0, len(table))
		for key := range table {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprint(out, renderer.RenderKey(key, table[key]))
		}
	}
	fmt.Fprintln(out)
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if configSchemaWrite {
		path, err := config.WriteSchemaFile(app.Manager.Dir())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderSchemaWritten(path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, created, err := app.Manager.WriteDefault()
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(err))
		return errors.New("config init failed")
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCreated(path, created))
	return nil
}
