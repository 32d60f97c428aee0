package main

import (
	"fmt"
	"os"

	"github.com/bingmann/microbenchmarks/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	version    = "dev"
	cfg        *config.Config
	logger     *zap.Logger
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "results2tsv [file...]",
		Short:   "Convert RESULT lines from benchmark logs into a TSV table",
		Version: version,
		Long: `results2tsv scans benchmark log files for lines starting with the RESULT
marker, collects their key=value fields, and writes one table to standard
output: a header row with all keys in first-seen order, then one row per
RESULT line in input order. With no file arguments, input is read from stdin.`,
		Example: `  # Convert one benchmark log
  results2tsv bench.log > bench.tsv

  # Concatenate several runs into one table
  results2tsv run1.log run2.log run3.log > all.tsv

  # Pipe a running benchmark through the converter
  ./mbm_sort | results2tsv > sort.tsv

  # Emit the dataset as JSON instead
  results2tsv --format json bench.log`,
		Args: cobra.ArbitraryArgs,
		RunE: runConvert,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Override config with global flags
			if viper.IsSet("debug") {
				cfg.Debug = viper.GetBool("debug")
			}
			if viper.IsSet("log-level") {
				cfg.LogLevel = viper.GetString("log-level")
			}
			if viper.IsSet("log-file") {
				cfg.LogFile = viper.GetString("log-file")
			}

			logger, err = cfg.NewLogger()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./results2tsv.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "log file path")

	// Conversion flags
	rootCmd.Flags().StringP("format", "f", "tsv", "output format (tsv or json)")
	rootCmd.Flags().StringP("output", "o", "", "output file (default is stdout)")

	// Bind flags to viper
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
