// internal/cli/show.go
package copa

import (
	"github.com/spf13/cobra"
)

// showCmd represents the 'show' command group for displaying resources.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Group commands for displaying resources",
	Long:  `The 'show' command groups subcommands that display the configuration or the parsed advisor records without touching the dashboard.`,
}

func init() {
	rootCmd.AddCommand(showCmd)
}
