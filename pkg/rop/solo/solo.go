package solo

import (
	"context"
	"errors"

	"github.com/ib-77/result/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Ok(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Err[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsOk() {
		return input
	}

	if valid, errMsg := validate(ctx, input.Value()); !valid {
		return rop.Err[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every check against input and joins the failures.
// With breakOnError it stops at the first failing check. A cancelled
// context returns input untouched.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	checks ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if !input.IsOk() || ctx.Err() != nil {
		return input
	}

	var errs []error
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}
		if res := check(ctx, input); res.IsErr() {
			errs = append(errs, rop.GetErrors(res.Err())...)
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return rop.Err[T](errors.Join(errs...))
}

// Switch is the context-aware AndThen.
func Switch[In, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return rop.AndThen(input, func(v In) rop.Result[Out] { return onSuccess(ctx, v) })
}

func Map[In, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return rop.Map(input, func(v In) Out { return onSuccess(ctx, v) })
}

func MapErr[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) error) rop.Result[T] {

	return input.MapErr(func(err error) error { return onError(ctx, err) })
}

func OrElse[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	return input.OrElse(func(err error) rop.Result[T] { return onError(ctx, err) })
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}
	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsOk() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsOk():
		onSuccess(ctx, input.Value())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}
	return input
}

// DoubleMap maps an Ok value and notifies the error handlers on failure.
// The failure itself is carried through.
func DoubleMap[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) rop.Result[Out] {

	switch {
	case input.IsOk():
		return rop.Ok(onSuccess(ctx, input.Value()))
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}
	return rop.CancelFrom[In, Out](input)
}

// Try runs a (value, error) function on an Ok input. Context errors
// returned by the function become a Cancel.
func Try[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.AndThen(input, func(v In) rop.Result[Out] {
		out, err := onTryExecute(ctx, v)
		return rop.From(out, err)
	})
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsOk() {
		return input
	}
	if err := maybeErr(ctx, input.Value()); err != nil {
		return rop.Err[T](err)
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsOk():
		return onSuccess(ctx, input.Value())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

// Join threads input through steps, passing every step result to concat.
// The context is checked between steps.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	steps ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	final := concat(ctx, steps[0](ctx, input))
	if final.IsErr() && breakOnError {
		return final
	}

	for _, step := range steps[1:] {
		if ctx.Err() != nil {
			return final
		}

		next := concat(ctx, step(ctx, final))
		if next.IsErr() && breakOnError {
			return next
		}
		final = next
	}
	return final
}
