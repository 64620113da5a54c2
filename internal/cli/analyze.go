package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexshd/tpep"
	"github.com/alexshd/tpep/internal/store"
)

// AnalyzeOptions holds flags for the analyze command.
type AnalyzeOptions struct {
	*RootOptions
	Database string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "analyze <n>...",
		Short: "Evaluate TPEP metrics for one or more integers",
		Long: `Evaluate φ(n), σ(n), and the derived TPEP ratios for each integer.

With a cache database (--db or config), previously evaluated integers
are served from SQLite; fresh evaluations are written back.

Example:
  tpep analyze 8128
  tpep analyze --format json 6 28 496 8128
  tpep analyze --db ./tpep.db 945`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite cache path (overrides config)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *AnalyzeOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openCache(opts.Database, opts.Config.Database.Path)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %q", arg)
		}

		result, err := resolve(ctx, st, n)
		if err != nil {
			return err
		}

		switch opts.Format {
		case "json":
			enc := json.NewEncoder(out)
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		default:
			fmt.Fprintln(out, result.Report())
		}
	}

	return nil
}

// resolve evaluates n, going through the cache when one is open.
func resolve(ctx context.Context, st *store.Store, n int64) (tpep.MetricResult, error) {
	if st != nil {
		cached, ok, err := st.GetResult(ctx, n)
		if err != nil {
			return tpep.MetricResult{}, err
		}
		if ok {
			slog.Debug("cache hit", "n", n)
			return cached, nil
		}
	}

	result, err := tpep.Evaluate(n)
	if err != nil {
		return tpep.MetricResult{}, err
	}

	if st != nil {
		if err := st.PutResult(ctx, result); err != nil {
			return tpep.MetricResult{}, err
		}
		slog.Debug("cached", "n", n)
	}
	return result, nil
}

// openCache opens the SQLite cache, flag path winning over config.
// Returns nil when caching is disabled.
func openCache(flagPath, configPath string) (*store.Store, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return nil, nil
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	slog.Debug("cache open", "path", path)
	return st, nil
}
