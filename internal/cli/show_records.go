// internal/cli/show_records.go
package copa

import (
	"fmt"
	"io"

	"github.com/mwiater/copa/internal/appconfig"
	"github.com/mwiater/copa/internal/roster"
	"github.com/spf13/cobra"
)

// showRecordsCmd loads the CSV export and prints what an update would write.
var showRecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the advisor records parsed from the CSV export",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShowRecords(cmd.OutOrStdout(), getConfig())
	},
}

func init() {
	showCmd.AddCommand(showRecordsCmd)
}

func runShowRecords(out io.Writer, cfg appconfig.Config) error {
	res, err := roster.Load(cfg.CSVPath, cfg.LoaderOptions())
	if err != nil {
		return err
	}
	printLoaded(out, res)
	fmt.Fprintln(out, recordsTable(res.Records))
	printSummary(out, roster.Summarize(res.Records, cfg.TopN))
	return nil
}
