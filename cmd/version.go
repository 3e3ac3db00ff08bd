package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyldmo/shopify-codegen/pkg/style"
	"github.com/hyldmo/shopify-codegen/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for shopify-codegen.

Examples:
  # Show short version info (default)
  shopify-codegen version

  # Show detailed version info
  shopify-codegen version --detailed

  # Show version info in JSON format
  shopify-codegen version --json`,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		switch {
		case versionJSON:
			if err := style.PrintJSON(out, version.GetVersion()); err != nil {
				cmd.PrintErrf("Error formatting JSON: %v\n", err)
			}
		case versionDetailed:
			fmt.Fprintln(out, version.GetVersionString())
		default:
			fmt.Fprintln(out, version.GetShortVersionString())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
