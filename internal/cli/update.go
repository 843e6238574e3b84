// internal/cli/update.go
package copa

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/mwiater/copa/internal/appconfig"
	"github.com/mwiater/copa/internal/dashboard"
	"github.com/mwiater/copa/internal/logging"
	"github.com/mwiater/copa/internal/roster"
	"github.com/spf13/cobra"
)

// updateCmd implements 'update', the same pipeline the bare command runs.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rewrite the dashboard data block from the CSV export",
	Long: `Read the advisor CSV export, render the advisor list as a script literal and
replace the data block inside the dashboard HTML file. The dashboard is only
written when the data block is found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd.OutOrStdout(), getConfig())
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// runUpdate loads the CSV, patches the dashboard and prints the summary.
func runUpdate(out io.Writer, cfg appconfig.Config) error {
	printBanner(out)

	fmt.Fprintf(out, "📂 Reading data from: %s\n", cfg.CSVPath)
	res, err := roster.Load(cfg.CSVPath, cfg.LoaderOptions())
	if err != nil {
		return err
	}
	printLoaded(out, res)
	if cfg.Debug {
		pp.Fprintln(out, res.Records)
	}

	fmt.Fprintf(out, "🔄 Updating file: %s\n", cfg.HTMLPath)
	outcome, err := dashboard.UpdateFile(cfg.HTMLPath, res.Records, cfg.Layout(), cfg.DryRun)
	if err != nil {
		return err
	}
	if outcome.Matches > 1 {
		warnColor.Fprintf(out, "⚠️  %d data blocks found, only the first was replaced\n", outcome.Matches)
	}

	if cfg.DryRun {
		fmt.Fprintln(out)
		fmt.Fprintln(out, outcome.Block)
		fmt.Fprintln(out)
		warnColor.Fprintf(out, "Dry run: %s was not modified\n", outcome.Path)
	} else {
		fmt.Fprintln(out)
		successColor.Fprintln(out, "✅ HTML file updated successfully!")
		if !outcome.Changed {
			fmt.Fprintln(out, mutedStyle.Render("   (data was already up to date)"))
		}
	}

	printSummary(out, roster.Summarize(res.Records, cfg.TopN))

	if !cfg.DryRun {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "✨ Done! You can now open the HTML file in your browser")
		fmt.Fprintf(out, "📁 Updated file: %s\n", outcome.Path)
	}
	logging.LogEvent("update: %d records from %s (%s) into %s", len(res.Records), cfg.CSVPath, res.Encoding, cfg.HTMLPath)
	return nil
}
