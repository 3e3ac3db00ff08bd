package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyldmo/shopify-codegen/pkg/codegen"
	"github.com/hyldmo/shopify-codegen/pkg/utils/schema"
)

var (
	schemaTarget string
	schemaOutput string

	schemaCmd = &cobra.Command{
		Use:   "schema",
		Short: "Print a JSON Schema for the config file or for section schemas",
		Long: strings.TrimSpace(`
shopify-codegen schema emits JSON Schema documents:

  config   the .shopify-codegen.yaml configuration file
  section  the JSON inside a {% schema %} block, usable for editor validation

Examples:
  shopify-codegen schema --target config -o docs/config_schema.json
  shopify-codegen schema --target section
`),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			var b strings.Builder
			if err := schema.Generate(schema.Target(schemaTarget), &b); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
			if err := codegen.WriteOutput(cmd.OutOrStdout(), "schema", b.String(), schemaOutput); err != nil {
				cmd.PrintErrf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringVarP(&schemaTarget, "target", "t", string(schema.TargetConfig), fmt.Sprintf("schema to generate (%s)", strings.Join(schema.ValidTargets(), ", ")))
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "output file (default stdout)")
}
