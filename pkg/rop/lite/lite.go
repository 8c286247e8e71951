package lite

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/core"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Run executes engine over inputCh on the given number of lines.
func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine core.Engine[T, T], lines int) <-chan rop.Result[T] {
	return core.Lines(ctx, inputCh, engine, core.CancellationHandlers[T, T]{}, nil, lines)
}

// Turnout is Run for stages that change the value type.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine core.Engine[In, Out], lines int) <-chan rop.Result[Out] {
	return core.Lines(ctx, inputCh, engine, core.CancellationHandlers[In, Out]{}, nil, lines)
}

// Drain is Turnout that reports unfinished inputs as cancels.
func Drain[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine core.Engine[In, Out], lines int) <-chan rop.Result[Out] {
	return core.Lines(ctx, inputCh, engine, core.DrainHandlers[In, Out](), nil, lines)
}

// lift runs step in its own goroutine and delivers its result unless ctx
// is done first.
func lift[In, Out any](step func(ctx context.Context, input rop.Result[In]) rop.Result[Out]) core.Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		out := make(chan rop.Result[Out], 1)
		go func() {
			defer close(out)
			if ctx.Err() != nil {
				return
			}
			out <- step(ctx, input)
		}()
		return out
	}
}

func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) core.Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	})
}

func Switch[In, Out any](switchOnSuccess func(ctx context.Context, r In) rop.Result[Out]) core.Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Switch(ctx, input, switchOnSuccess)
	})
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	})
}

func MapErr[T any](mapOnError func(ctx context.Context, err error) error) core.Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.MapErr(ctx, input, mapOnError)
	})
}

func Tee[T any](sideEffect func(ctx context.Context, r rop.Result[T])) core.Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Tee(ctx, input, sideEffect)
	})
}

func DoubleTee[T any](sideEffect func(ctx context.Context, r T),
	sideEffectOnError func(ctx context.Context, err error),
	sideEffectOnCancel func(ctx context.Context, err error)) core.Engine[T, T] {
	return lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.DoubleTee(ctx, input, sideEffect, sideEffectOnError, sideEffectOnCancel)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Engine[In, Out] {
	return lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally collapses every result on input into an Out value. It stops
// when input closes or ctx is done.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				res := solo.Finally(ctx, in, handlers.OnSuccess, handlers.OnError, handlers.OnCancel)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
