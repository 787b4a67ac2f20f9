// Package cli provides the command-line interface for curate.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/raphaelgruber/rolemodel-curate/internal/config"
	"github.com/raphaelgruber/rolemodel-curate/internal/store"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose    bool
	noColor    bool
	configFile string
	rawDir     string
	outputDir  string

	// Global config, logger and record store
	cfg         config.Config
	logger      *slog.Logger
	closeLogger func() error
	recordStore *store.Store
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it runs an interactive curation session.
var rootCmd = &cobra.Command{
	Use:   "curate",
	Short: "Curate role model stories into structured JSON records",
	Long: `Curate turns raw role model text files into structured JSON records
describing a public figure's mental health experience.

It lists the .txt files in the raw data folder, shows a preview of the one
you pick, and walks you through every field of a record. Each record is
saved as <RoleModelName>_<StoryNumber>_<RollNumber>.json in the output
folder, numbered per role model and roll number.

Examples:
  curate
  curate --raw-dir ./Raw_Data --output-dir ./Generated_JSON_Entries
  curate list --subject "Selena Gomez"
  curate check`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for help
		if cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		if configFile != "" {
			cfg.ConfigFile = configFile
		}
		if cfg.ConfigFile != "" {
			if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
		}
		if rawDir != "" {
			cfg.RawDir = rawDir
		}
		if outputDir != "" {
			cfg.OutputDir = outputDir
		}
		if noColor {
			cfg.NoColor = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, closeLogger = config.SetupLogger(cfg.LogFile, cfg.LogLevel, verbose)
		recordStore = store.New(cfg.RawDir, cfg.OutputDir, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeLogger != nil {
			if err := closeLogger(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr as well as the log file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output (also set by NO_COLOR)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (overrides CURATE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&rawDir, "raw-dir", "", "folder with raw .txt files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "folder for JSON records (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(nextCmd)
}
