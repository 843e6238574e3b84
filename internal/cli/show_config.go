// internal/cli/show_config.go
package copa

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/copa/internal/appconfig"
	"github.com/spf13/cobra"
)

// showConfigCmd prints the merged configuration.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, &cfg)
		if cfg.Debug {
			pp.Fprintln(cmd.OutOrStdout(), cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
