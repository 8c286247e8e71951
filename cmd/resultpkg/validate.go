package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/result/internal/logger"
	"github.com/ib-77/result/internal/manifest"
	"github.com/ib-77/result/pkg/rop/core"
	"github.com/ib-77/result/pkg/rop/lite"
)

var errValidationFailed = errors.New("one or more manifests are invalid")

type report struct {
	index    int
	path     string
	err      error
	warnings []string
}

// createValidateCommand creates the validate subcommand
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [flags] MANIFEST...",
		Short: "Validate one or more package manifests",
		Args:  cobra.MinimumNArgs(1),
		RunE:  executeValidate,
	}
}

func executeValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = core.WithWorkerOptions(ctx, workers)
	failed := 0

	for _, r := range validateAll(ctx, args) {
		if r.err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "fail %s: %v\n", r.path, r.err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", r.path)
		for _, w := range r.warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "warn %s: %s\n", r.path, w)
		}
	}

	logger.Logger().Infof("checked %d manifests, %d failed", len(args), failed)
	if failed > 0 {
		return errValidationFailed
	}
	return nil
}

// validateAll checks every path on the configured number of lines and
// returns one report per path, in argument order. Paths the pipeline
// never finished are reported as failed with the cancellation cause.
func validateAll(ctx context.Context, paths []string) []report {
	lines := core.GetWorkerMaxCount(ctx, 1)

	reports := make([]report, len(paths))
	for i, p := range paths {
		reports[i] = report{index: i, path: p}
	}

	checked := lite.Drain(ctx,
		core.ToChanManyResults(ctx, reports),
		lite.Map(func(ctx context.Context, job report) report {
			res := manifest.Check(ctx, job.path)
			job.err = res.Err()
			if res.IsOk() {
				job.warnings = manifest.Warnings(res.Value())
			}
			return job
		}),
		lines)

	// Collect everything the lines emit, even after ctx is done.
	collect := context.WithoutCancel(ctx)
	done := core.FromChanMany(collect, lite.Finally(collect, checked, lite.FinallyHandlers[report, report]{
		OnSuccess: func(_ context.Context, r report) report { return r },
		OnError:   func(_ context.Context, err error) report { return report{index: -1, err: err} },
		OnCancel:  func(_ context.Context, err error) report { return report{index: -1, err: err} },
	}))

	finished := make([]bool, len(paths))
	for _, r := range done {
		if r.index < 0 {
			continue
		}
		reports[r.index] = r
		finished[r.index] = true
	}

	for i := range reports {
		if !finished[i] {
			reports[i].err = fmt.Errorf("not checked: %w", notCheckedCause(ctx))
		}
	}
	return reports
}

func notCheckedCause(ctx context.Context) error {
	if cause := context.Cause(ctx); cause != nil {
		return cause
	}
	return core.ErrCancelled
}
