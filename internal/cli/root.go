// internal/cli/root.go
package copa

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mwiater/copa/internal/appconfig"
	"github.com/mwiater/copa/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
)

// rootCmd runs the dashboard update when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "copa",
	Short: "copa — refresh the Copa de la Domiciliación dashboard from a CSV export",
	Long: `copa reads the advisor export (datos.csv by default), normalizes its rows and
rewrites the advisor data block embedded in the leaderboard page
(copa_dashboard_optimizado.html by default).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		if err := ensureConfigLoaded(cmd.Flags().Changed("config")); err != nil {
			return err
		}

		// 2) Materialize the merged configuration (flags > config > defaults)
		//    and reject anything the pipeline cannot work with.
		cfg := appconfig.Defaults()
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		if err := appconfig.Validate(cfg); err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath(), cfg.Debug); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd.OutOrStdout(), getConfig())
	},
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = appVersion
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		reportFailure(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := appconfig.Defaults()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging and dumps")
	rootCmd.PersistentFlags().String("csv", defaults.CSVPath, "advisor CSV export to read")
	rootCmd.PersistentFlags().String("html", defaults.HTMLPath, "dashboard HTML file to rewrite")
	rootCmd.PersistentFlags().Int("top", defaults.TopN, "number of advisors listed in the summary")
	rootCmd.PersistentFlags().String("variable", defaults.Variable, "script variable holding the advisor list")
	rootCmd.PersistentFlags().Bool("dryRun", false, "print the generated block instead of writing the dashboard")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file (\"default\" for copa.log)")

	// Bind flags to Viper keys (flags override config)
	for _, name := range []string{"debug", "csv", "html", "top", "variable", "dryRun", "logFile"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig points viper at the requested config file.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults. A missing file
// is only an error when it was named explicitly.
func ensureConfigLoaded(explicit bool) error {
	d := appconfig.Defaults()
	viper.SetDefault("csv", d.CSVPath)
	viper.SetDefault("html", d.HTMLPath)
	viper.SetDefault("top", d.TopN)
	viper.SetDefault("variable", d.Variable)
	viper.SetDefault("defaultCategory", d.DefaultCategory)
	viper.SetDefault("columns.name", d.Columns.Name)
	viper.SetDefault("columns.count", d.Columns.Count)
	viper.SetDefault("columns.category", d.Columns.Category)
	viper.SetDefault("debug", false)
	viper.SetDefault("dryRun", false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if missing && !explicit {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// getConfig returns the loaded application configuration, or the defaults
// when no command has materialized one yet.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Defaults()
	}
	return *currentConfig
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version string) {
	if version != "" {
		appVersion = version
	}
}
