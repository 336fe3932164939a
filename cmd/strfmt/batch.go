package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/strfmt"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Render a YAML list of templates concurrently",
	Long: `Batch reads FILE, a YAML list of {template, args} jobs, renders them
concurrently and prints the results in input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("jobs", "j", 0, "number of concurrent renders (0 = GOMAXPROCS)")
}

// job is one entry of a batch file.
type job struct {
	Template string `yaml:"template"`
	Args     []any  `yaml:"args"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := opts.logger()
	f, err := opts.formatter(logger)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var list []job
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("loaded batch", "path", args[0], "jobs", len(list))

	out, err := renderBatch(cmd.Context(), f, list, jobs)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// renderBatch renders every job with at most limit goroutines and returns the
// results in input order.
func renderBatch(ctx context.Context, f *strfmt.Formatter, list []job, limit int) ([]string, error) {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	results := make([]string, len(list))
	if len(list) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(limit, len(list)))
	for i, j := range list {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := f.Render(j.Template, normalizeArgs(j.Args)...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
