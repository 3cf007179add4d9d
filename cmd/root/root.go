// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mbaillet/cic-xlsx/internal/config"
	"mbaillet/cic-xlsx/internal/export"
	"mbaillet/cic-xlsx/internal/logging"
)

// CommonFlags represents the flags shared by the extraction commands
type CommonFlags struct {
	Output  string
	Profile string
	Scope   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved application configuration after the root
	// command's PersistentPreRun has executed.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "cic-xlsx",
		Short: "Extract transactions from CIC statement PDFs into XLSX or CSV.",
		Long: `cic-xlsx reads CIC bank-statement PDFs, locates the transaction
tables, and exports the merged dataset as a styled XLSX workbook or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to cic-xlsx!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Resolve the full configuration (defaults, config file,
			// CIC_-prefixed env vars) and let it reconfigure logging.
			Cfg = config.GetGlobalConfig()
			Log = config.Logger
			applyConfigDefaults(cmd)

			export.SetLogger(GetLogrusAdapter())
		},
	}

	// SharedFlags holds the common flag values after parsing
	SharedFlags = CommonFlags{}
)

// applyConfigDefaults backfills shared flags the user did not set on the
// command line with their configured values.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("scope") && Cfg.Export.Scope != "" {
		SharedFlags.Scope = Cfg.Export.Scope
	}
	if !flags.Changed("profile") && Cfg.Profile.Path != "" {
		SharedFlags.Profile = Cfg.Profile.Path
	}
}

// MaxColumnWidth returns the configured XLSX column width cap.
func MaxColumnWidth() float64 {
	if Cfg != nil && Cfg.Export.MaxColumnWidth > 0 {
		return Cfg.Export.MaxColumnWidth
	}
	return 0 // Exporter default applies.
}

// CSVDelimiter returns the configured CSV field delimiter.
func CSVDelimiter() rune {
	if Cfg != nil && Cfg.CSV.Delimiter != "" {
		return []rune(Cfg.CSV.Delimiter)[0]
	}
	return export.DefaultDelimiter
}

// GetLogrusAdapter wraps the shared logrus instance in the pipeline's
// logger interface.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: dated name in the working directory)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Profile, "profile", "p", "", "Locale profile YAML file (default: built-in CIC profile)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Scope, "scope", export.DefaultScope, "Scope tag used in generated file names")
}
