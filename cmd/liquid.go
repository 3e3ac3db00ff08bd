package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyldmo/shopify-codegen/pkg/codegen"
)

var (
	liquidWatch bool

	liquidCmd = &cobra.Command{
		Use:   "liquid",
		Short: "Generate TypeScript types from section schemas",
		Long: strings.TrimSpace(`
shopify-codegen liquid scans the sections directory for templates, reads the JSON in
each {% schema %} ... {% endschema %} block and emits one TypeScript module with:

  - an interface per section, extending ShopifySection
  - an interface per block type, extending Block
  - the ShopifySections union of every section interface

Templates without a schema are skipped; a schema that is not valid JSON is logged
and the template is skipped.

Examples:
  # Print the types for ./sections to stdout
  shopify-codegen liquid

  # Write them to a file
  shopify-codegen liquid -d theme/sections -o src/types/sections.ts

  # Suffix type names with Section/Block
  shopify-codegen liquid --prefix

  # Regenerate whenever a template changes
  shopify-codegen liquid -o src/types/sections.ts --watch
`),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			opts := codegen.NewLiquidOptions(appCtx)
			opts.Watch = liquidWatch
			if err := codegen.ExecuteLiquidCommand(appCtx, opts, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("liquid codegen failed")
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(liquidCmd)

	flags := liquidCmd.Flags()
	flags.StringP("dir", "d", "sections", "directory containing the section templates")
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.Bool("prefix", false, "suffix section and block type names with Section/Block")
	flags.String("extension", ".liquid", "template file extension")
	flags.Int("concurrency", 0, "templates processed in parallel (default number of CPUs)")
	flags.BoolVarP(&liquidWatch, "watch", "w", false, "regenerate when templates change")

	for key, flag := range map[string]string{
		"liquid.dir":         "dir",
		"liquid.output":      "output",
		"liquid.prefix":      "prefix",
		"liquid.extension":   "extension",
		"liquid.concurrency": "concurrency",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}
