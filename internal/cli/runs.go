package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded scan runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database path (overrides config)")

	return cmd
}

func runRuns(cmd *cobra.Command, opts *RunsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openCache(opts.Database, opts.Config.Database.Path)
	if err != nil {
		return err
	}
	if st == nil {
		return fmt.Errorf("no database configured: pass --db or set database.path in config")
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return json.NewEncoder(out).Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no scan runs recorded")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(out, "%s  [%d, %d]  evaluated=%d perfect=%d abundant=%d forbidden=%d  %s (%s)\n",
			run.ID, run.Lo, run.Hi, run.Evaluated, run.Perfect, run.Abundant, run.Forbidden,
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Duration)
	}
	return nil
}
