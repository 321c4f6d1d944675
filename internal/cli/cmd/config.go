package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/application/usecase"
	"github.com/bnema/fontpicker/internal/cli/styles"
	"github.com/bnema/fontpicker/internal/infrastructure/config"
)

var (
	configSchemaOutput string
	configKeysSection  string
	configKeysJSON     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Inspect the configuration file and the keys it accepts.

Every key can also be set through an environment variable with the
FONTPICKER_ prefix (cache.driver -> FONTPICKER_CACHE_DRIVER).`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default and env variable",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)

	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file instead of stdout")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only show keys of this section (e.g. Cache)")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		if err := config.GenerateSchemaFile(configSchemaOutput); err != nil {
			return err
		}
		renderer := styles.NewConfigSchemaRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath("schema written", configSchemaOutput))
		return nil
	}

	data, err := config.MarshalSchema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	result, err := a.ConfigSchema.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(result.Keys) == 0 && configKeysSection != "" {
		return fmt.Errorf("unknown config section %q", configKeysSection)
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
