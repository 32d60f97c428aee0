package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bingmann/microbenchmarks/converter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runConvert(cmd *cobra.Command, args []string) error {
	// Override config with command flags
	if viper.IsSet("format") {
		cfg.Convert.Format = viper.GetString("format")
	}
	if viper.IsSet("output") {
		cfg.Convert.OutputFile = viper.GetString("output")
	}

	// Validate configuration
	if err := cfg.ValidateConvertConfig(); err != nil {
		return err
	}

	conv := converter.NewConverter(logger)

	// Inputs are exactly the user-supplied paths, read fully in argument
	// order. With no arguments, the log is read from stdin.
	if len(args) == 0 {
		if err := conv.ReadStream("stdin", os.Stdin); err != nil {
			return err
		}
	} else {
		for _, path := range args {
			if err := conv.ReadFile(path); err != nil {
				return err
			}
		}
	}

	out, closeOut, err := openOutput(cfg.Convert.OutputFile)
	if err != nil {
		return err
	}

	writer, err := newDatasetWriter(cfg.Convert.Format, out)
	if err != nil {
		_ = closeOut()
		return err
	}

	if _, err := conv.WriteTo(writer); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// newDatasetWriter selects the emitter for the configured output format.
func newDatasetWriter(format string, w io.Writer) (converter.DatasetWriter, error) {
	switch format {
	case "tsv":
		return converter.NewTSVWriter(w), nil
	case "json":
		return converter.NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// openOutput returns the destination writer and its close function. An empty
// path means stdout, which is left open.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return f, f.Close, nil
}
