package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	if cfg == nil {
		d := Defaults()
		cfg = &d
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  CSV File:         %s\n", cfg.CSVPath)
	fmt.Fprintf(out, "  Dashboard:        %s\n", cfg.HTMLPath)
	fmt.Fprintf(out, "  Script Variable:  %s\n", cfg.Variable)
	fmt.Fprintf(out, "  Top Advisors:     %d\n", cfg.TopN)
	fmt.Fprintf(out, "  Default Category: %s\n", cfg.DefaultCategory)
	fmt.Fprintf(out, "  Name Columns:     %s\n", strings.Join(cfg.Columns.Name, ", "))
	fmt.Fprintf(out, "  Count Columns:    %s\n", strings.Join(cfg.Columns.Count, ", "))
	fmt.Fprintf(out, "  Category Columns: %s\n", strings.Join(cfg.Columns.Category, ", "))
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Dry Run:          %v\n", cfg.DryRun)
	if path := cfg.LogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log File:         %s\n", path)
	}
}
