package core

import (
	"context"
	"sync"

	"github.com/ib-77/result/internal/logger"
	"github.com/ib-77/result/pkg/rop"
)

// Engine processes one result and delivers at most one result on the
// returned channel.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out]

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out])
}

// Locomotive is one worker line: it pulls results from inputCh, runs the
// engine and forwards what it produces until inputCh closes or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	stop := func() {
		logger.Logger().Debugw("locomotive stopped", "reason", ctx.Err())
		if handlers.OnCancel != nil {
			handlers.OnCancel(ctx, inputCh, outCh)
		}
	}

	for {
		var in rop.Result[In]
		select {
		case <-ctx.Done():
			stop()
			return
		case next, ok := <-inputCh:
			if !ok {
				return
			}
			in = next
		}

		if ctx.Err() != nil {
			if handlers.OnCancelUnprocessed != nil {
				handlers.OnCancelUnprocessed(ctx, in, outCh)
			}
			stop()
			return
		}

		var processed rop.Result[Out]
		select {
		case <-ctx.Done():
			if handlers.OnCancelUnprocessed != nil {
				handlers.OnCancelUnprocessed(ctx, in, outCh)
			}
			stop()
			return
		case pr, running := <-engine(ctx, in):
			if !running {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				stop()
				return
			}
			processed = pr
		}

		select {
		case <-ctx.Done():
			if handlers.OnCancelProcessed != nil {
				handlers.OnCancelProcessed(ctx, in, processed, outCh)
			}
			stop()
			return
		case outCh <- processed:
			if onSuccess != nil {
				onSuccess(ctx, processed)
			}
		}
	}
}

// Lines starts n locomotives over inputCh and closes the returned channel
// once all of them are done. n below 1 runs a single line.
func Lines[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), n int) <-chan rop.Result[Out] {

	if n < 1 {
		n = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
