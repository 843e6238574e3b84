// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"

	"github.com/mwiater/copa/internal/dashboard"
	"github.com/mwiater/copa/internal/roster"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultCSVPath is the advisor export read on every run.
	DefaultCSVPath = "datos.csv"
	// DefaultHTMLPath is the dashboard rewritten on every run.
	DefaultHTMLPath = "copa_dashboard_optimizado.html"
	// defaultLogFile is used when logging to a file is requested without a path.
	defaultLogFile = "copa.log"
)

// Config represents the top-level application configuration.
type Config struct {
	CSVPath         string  `json:"csv" mapstructure:"csv"`
	HTMLPath        string  `json:"html" mapstructure:"html"`
	TopN            int     `json:"top" mapstructure:"top"`
	Variable        string  `json:"variable" mapstructure:"variable"`
	DefaultCategory string  `json:"defaultCategory" mapstructure:"defaultCategory"`
	Columns         Columns `json:"columns" mapstructure:"columns"`
	Debug           bool    `json:"debug" mapstructure:"debug"`
	DryRun          bool    `json:"dryRun" mapstructure:"dryRun"`
	LogFile         string  `json:"logFile,omitempty" mapstructure:"logFile"`
	ConfigPath      string  `json:"-" mapstructure:"-"`
}

// Columns lists the accepted CSV header spellings per field.
type Columns struct {
	Name     []string `json:"name" mapstructure:"name"`
	Count    []string `json:"count" mapstructure:"count"`
	Category []string `json:"category" mapstructure:"category"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	cols := roster.DefaultColumns()
	return Config{
		CSVPath:         DefaultCSVPath,
		HTMLPath:        DefaultHTMLPath,
		TopN:            roster.DefaultTopN,
		Variable:        dashboard.DefaultVariable,
		DefaultCategory: roster.DefaultCategory,
		Columns: Columns{
			Name:     cols.Name,
			Count:    cols.Count,
			Category: cols.Category,
		},
	}
}

// LoaderOptions returns the roster options described by the configuration.
func (c Config) LoaderOptions() roster.Options {
	return roster.Options{
		Columns: roster.Columns{
			Name:     c.Columns.Name,
			Count:    c.Columns.Count,
			Category: c.Columns.Category,
		},
		DefaultCategory: c.DefaultCategory,
	}
}

// Layout returns the dashboard layout for the configured script variable.
func (c Config) Layout() dashboard.Layout {
	l := dashboard.DefaultLayout()
	if v := strings.TrimSpace(c.Variable); v != "" {
		l.Variable = v
	}
	return l
}

// LogFilePath returns the path to the application log file. An empty result
// means no log file is written.
func (c Config) LogFilePath() string {
	path := strings.TrimSpace(c.LogFile)
	if strings.EqualFold(path, "default") {
		return defaultLogFile
	}
	return path
}
