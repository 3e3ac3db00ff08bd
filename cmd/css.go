package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyldmo/shopify-codegen/pkg/codegen"
	"github.com/hyldmo/shopify-codegen/pkg/css"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Generate SCSS or LESS variables from theme settings",
	Long: strings.TrimSpace(`
shopify-codegen css reads config/settings_data.json and emits one variable per
current setting whose value is a non-empty string. URLs and settings whose key
contains "font" are skipped; underscores in keys become dashes.

Examples:
  # SCSS variables to stdout
  shopify-codegen css

  # LESS variables into a file
  shopify-codegen css --lang less -o src/styles/_settings.less

  # Canonical lower-case #rrggbb colours
  shopify-codegen css --normalize-colors
`),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := codegen.ExecuteCSSCommand(appCtx, codegen.NewCSSOptions(appCtx), cmd.OutOrStdout()); err != nil {
			log.Error().Err(err).Msg("css codegen failed")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(cssCmd)

	flags := cssCmd.Flags()
	flags.String("lang", "scss", fmt.Sprintf("stylesheet language (%s)", strings.Join(css.ValidDialects(), ", ")))
	flags.String("config-path", "config/settings_data.json", "path to settings_data.json")
	flags.StringP("output", "o", "", "output file (default stdout)")
	flags.Bool("normalize-colors", false, "rewrite hex colours as lower-case #rrggbb")

	_ = viper.BindPFlag("css.lang", flags.Lookup("lang"))
	_ = viper.BindPFlag("css.config_path", flags.Lookup("config-path"))
	_ = viper.BindPFlag("css.output", flags.Lookup("output"))
	_ = viper.BindPFlag("css.normalize_colors", flags.Lookup("normalize-colors"))
}
