// Package cli implements the tpep command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/tpep/internal/config"
)

// RootOptions holds global flags and loaded configuration.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json"

	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tpep CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tpep",
		Short: "Totient-Parity Exclusion Principle analyzer",
		Long: `tpep computes number-theoretic metrics for positive integers:
Euler's totient, the divisor sum, and the derived TPEP ratios
(totient density, perfection ratio, mirror gap, stability ratio).

Single integers get a full analysis report; intervals can be scanned
in parallel to chart perfect numbers and the odd-abundant forbidden zone.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, path, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			opts.Config = cfg

			level := parseLevel(cfg.Log.Level)
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
			))

			if path != "" {
				slog.Debug("config loaded", "path", path)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")

	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// parseLevel maps a config level string to a slog level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
