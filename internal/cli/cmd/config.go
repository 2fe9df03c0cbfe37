package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/switchboard/internal/cli/styles"
	"github.com/bnema/switchboard/internal/infrastructure/config"
)

var schemaOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (file, environment and defaults merged)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(a.Config); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where the configuration, schema and journal live",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		file := a.Manager.GetConfigFile()
		schema := filepath.Join(filepath.Dir(file), "config.schema.json")
		out := styles.NewConfigRenderer(a.Theme).RenderPaths(file, schema, a.Config.Journal.Path)
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaOutput == "" {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}

		if err := os.MkdirAll(filepath.Dir(schemaOutput), 0o755); err != nil {
			return fmt.Errorf("create schema dir: %w", err)
		}
		if err := config.WriteSchemaFile(schemaOutput); err != nil {
			return err
		}
		_, err := fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(schemaOutput))
		return err
	},
}

func init() {
	configSchemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to this file instead of stdout")
	configCmd.AddCommand(configShowCmd, configPathCmd, configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
