package core

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	workerOptionKey  optionKey = "worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	// ProcessRemaining makes cancellation handlers drain what is left
	// instead of dropping it.
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	if options, ok := ctx.Value(workerOptionKey).(WorkerOptions); ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	if options, ok := ctx.Value(processOptionKey).(ProcessOptions); ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
