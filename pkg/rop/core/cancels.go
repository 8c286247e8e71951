package core

import (
	"context"
	"errors"

	"github.com/ib-77/result/pkg/rop"
)

var ErrCancelled = errors.New("operation cancelled")

// cancelled keeps an existing cancel, otherwise reports ErrCancelled.
func cancelled[In, Out any](in rop.Result[In]) rop.Result[Out] {
	if in.IsCancel() {
		return rop.CancelFrom[In, Out](in)
	}
	return rop.Cancel[Out](ErrCancelled)
}

// CancelRemainingResults turns every remaining input into a cancel result.
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {

	if !IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- cancelled[In, Out](in)
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In],
	outCh chan<- rop.Result[Out]) {

	if IsProcessRemainingEnabled(ctx, true) {
		outCh <- cancelled[In, Out](in)
	}
}

// DrainHandlers reports every input that could not finish as a cancel
// instead of dropping it.
func DrainHandlers[In, Out any]() CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed: func(ctx context.Context, in rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out]) {
			if IsProcessRemainingEnabled(ctx, true) {
				outCh <- processed
			}
		},
	}
}
