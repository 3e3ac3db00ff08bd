// Package cmd provides the command-line interface of shopify-codegen
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyldmo/shopify-codegen/pkg/codegen"
	"github.com/hyldmo/shopify-codegen/pkg/context"
	"github.com/hyldmo/shopify-codegen/pkg/style"
	log2 "github.com/hyldmo/shopify-codegen/pkg/utils/log"
	"github.com/hyldmo/shopify-codegen/pkg/utils/version"
)

var (
	appCtx *context.AppContext
	log    log2.Logger

	// Global flags
	globalFlags = context.GlobalFlags{}

	errNoCommand = errors.New("no codegen specified")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shopify-codegen",
	Short: "shopify-codegen generates TypeScript and stylesheet code from a Shopify theme",
	Long: `shopify-codegen reads a Shopify theme and generates code from it:

  liquid  TypeScript types from the {% schema %} blocks of section templates
  css     SCSS or LESS variables from config/settings_data.json`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		cmd.SetOut(cmd.ErrOrStderr())
		_ = cmd.Help()
		return errNoCommand
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := context.InitAppContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}

		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "shopify-codegen", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoCommand):
		return 1
	case strings.HasPrefix(err.Error(), "unknown command"):
		_ = style.PrintError(stderr, "%s", codegen.UnknownCodegenMessage(unknownCommandName(err)))
		return 1
	default:
		_ = style.PrintError(stderr, "Error: %v", err)
		return 1
	}
}

// unknownCommandName extracts the name from cobra's `unknown command "x" for "y"` error.
func unknownCommandName(err error) string {
	_, rest, _ := strings.Cut(err.Error(), `unknown command "`)
	name, _, _ := strings.Cut(rest, `"`)
	return name
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file (default .shopify-codegen.yaml)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
