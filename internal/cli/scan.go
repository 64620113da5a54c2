package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/tpep"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Workers  int
	Keep     int
	Database string
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan <lo> <hi>",
		Short: "Scan an interval and chart the forbidden zone",
		Long: `Evaluate every integer in [lo, hi] on a worker pool and aggregate
classification counts, perfect numbers, forbidden-zone members, and the
odd integers whose stability ratio comes closest to 4.

With a database (--db or config), the run is recorded under a UUID.

Example:
  tpep scan 1 100000
  tpep scan --workers 8 --keep 20 1 1000000
  tpep scan --db ./tpep.db --format json 1 10000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker count (0 = config or NumCPU)")
	cmd.Flags().IntVar(&opts.Keep, "keep", 0, "near-misses to keep (0 = config)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database for run records (overrides config)")

	return cmd
}

func runScan(cmd *cobra.Command, opts *ScanOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	lo, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[0])
	}
	hi, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[1])
	}

	cfg := tpep.ScanConfig{Workers: opts.Workers, Keep: opts.Keep}
	if cfg.Workers == 0 {
		cfg.Workers = opts.Config.Scan.Workers
	}
	if cfg.Keep == 0 {
		cfg.Keep = opts.Config.Scan.Keep
	}

	slog.Info("scanning", "lo", lo, "hi", hi, "workers", cfg.Workers)
	report, err := tpep.Scan(ctx, lo, hi, cfg)
	if err != nil {
		return err
	}
	slog.Info("scan complete",
		"evaluated", report.Evaluated,
		"perfect", report.Perfect,
		"forbidden_zone", len(report.ForbiddenZone),
		"duration", report.Duration,
	)

	if st, err := openCache(opts.Database, opts.Config.Database.Path); err != nil {
		return err
	} else if st != nil {
		defer st.Close()
		id, err := st.RecordRun(ctx, report)
		if err != nil {
			return err
		}
		slog.Info("run recorded", "id", id)
	}

	out := cmd.OutOrStdout()
	switch opts.Format {
	case "json":
		enc := json.NewEncoder(out)
		return enc.Encode(report)
	default:
		fmt.Fprint(out, report.Summary())
		return nil
	}
}
