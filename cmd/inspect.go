package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/hyldmo/shopify-codegen/pkg/codegen"
	"github.com/hyldmo/shopify-codegen/pkg/inspect"
)

var (
	inspectOptions codegen.InspectOptions

	inspectCmd = &cobra.Command{
		Use:   "inspect [query]",
		Short: "Show the sections, blocks and settings found in the templates",
		Long: strings.TrimSpace(`
shopify-codegen inspect lists what the liquid codegen sees: every section with a
schema, its blocks and the TypeScript type of each setting. An optional query
fuzzily filters sections by file, name or type name.

Examples:
  shopify-codegen inspect
  shopify-codegen inspect hero --format table
  shopify-codegen inspect --format markdown
  shopify-codegen inspect --pick
`),
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			opts := inspectOptions
			opts.Liquid = codegen.NewLiquidOptions(appCtx)
			if cmd.Flags().Changed("dir") {
				opts.Liquid.Dir, _ = cmd.Flags().GetString("dir")
			}
			if cmd.Flags().Changed("prefix") {
				opts.Liquid.Prefix, _ = cmd.Flags().GetBool("prefix")
			}
			if len(args) > 0 {
				opts.Query = args[0]
			}
			err := codegen.ExecuteInspectCommand(appCtx, opts, cmd.OutOrStdout())
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return
			}
			if err != nil {
				log.Error().Err(err).Msg("inspect failed")
				os.Exit(1)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	flags := inspectCmd.Flags()
	flags.StringVarP(&inspectOptions.Format, "format", "f", "tree", fmt.Sprintf("output format (%s)", strings.Join(inspect.ValidFormats(), ", ")))
	flags.BoolVarP(&inspectOptions.Pick, "pick", "i", false, "pick a section interactively")
	flags.BoolVar(&inspectOptions.NoColor, "no-color", false, "disable color output")
	// defaults come from liquid.*; these only override them
	flags.StringP("dir", "d", "sections", "directory containing the section templates")
	flags.Bool("prefix", false, "suffix section and block type names with Section/Block")
}
