package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyldmo/shopify-codegen/pkg/configs"
	"github.com/hyldmo/shopify-codegen/pkg/style"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage shopify-codegen configuration",
		Long:    `shopify-codegen config allows you to view and manage the generator settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate shopify-codegen configuration",
		Long:  `shopify-codegen config validate checks that the configuration file can be read and decoded.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				cmd.PrintErrln("No config file found, using defaults and environment variables")
				os.Exit(1)
			}
			if err := appCtx.Viper.ReadInConfig(); err != nil {
				cmd.PrintErrf("Config file error: %v\n", err)
				os.Exit(1)
			}
			if _, err := configs.Reload(); err != nil {
				cmd.PrintErrf("Config decode error: %v\n", err)
				os.Exit(1)
			}
			_ = style.PrintSuccess(cmd.OutOrStdout(), "Config file is valid: %s", fileUsed)
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List shopify-codegen configuration",
		Long: `shopify-codegen config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - app: Application settings
  - log: Logging settings
  - liquid: Section type generator settings
  - css: Stylesheet variable generator settings
  - watch: Watch mode settings

Examples:
  shopify-codegen config list                    # Show all configuration (viper raw data)
  shopify-codegen config list --all              # Show all configuration with defaults
  shopify-codegen config list liquid             # Show only liquid settings
  shopify-codegen config list --format json      # Output in JSON format
  shopify-codegen config list --yaml             # Output in YAML format (shorthand)
  shopify-codegen config list css --all --json   # Show css config with defaults in JSON`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				cmd.PrintErrf("Error getting config section: %v\n", err)
				os.Exit(1)
			}

			if err := configs.OutputData(data, format, cmd.OutOrStdout(), !noColor); err != nil {
				log.Error().Err(err).Msg("Error displaying config")
				os.Exit(1)
			}
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize shopify-codegen configuration",
		Long: `shopify-codegen config init creates a new configuration file with default settings.

Examples:
  shopify-codegen config init                    # Create .shopify-codegen.yaml in current directory
  shopify-codegen config init --path config/shopify-codegen.yaml
  shopify-codegen config init --format json      # Create JSON format config`,
		Run: func(cmd *cobra.Command, _ []string) {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				cmd.PrintErrf("Invalid format: %v\n", err)
				os.Exit(1)
			}

			if path == "" {
				path = "." + configs.AppName + "." + string(format)
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				cmd.PrintErrf("Failed to create config file: %v\n", err)
				os.Exit(1)
			}

			_ = style.PrintSuccess(cmd.OutOrStdout(), "Config file created: %s", path)
		},
		Args: cobra.NoArgs,
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
