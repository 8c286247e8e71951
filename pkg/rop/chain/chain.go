package chain

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Ok(v))
}

// FromTry creates a new chain from the (value, error) idiom
func FromTry[T any](ctx context.Context, v T, err error) Chain[T] {
	return Start(ctx, rop.From(v, err))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.with(solo.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.Try(c.ctx, c.res, try))
}

func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) MapErr(onError func(ctx context.Context, err error) error) Chain[T] {
	return c.with(solo.MapErr(c.ctx, c.res, onError))
}

func (c Chain[T]) OrElse(onError func(ctx context.Context, err error) rop.Result[T]) Chain[T] {
	return c.with(solo.OrElse(c.ctx, c.res, onError))
}

func (c Chain[T]) Validate(validate func(ctx context.Context, in T) (valid bool, errMsg string)) Chain[T] {
	return c.with(solo.AndValidate(c.ctx, c.res, validate))
}

// And keeps the first failure, otherwise takes required's result.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	return c.with(c.res.And(required.res))
}

// Or keeps the first success, otherwise takes alternative's result.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	return c.with(c.res.Or(alternative.res))
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if !c.res.IsOk() {
		return c
	}

	for {
		c = c.Then(onSuccess)
		if !c.res.IsOk() || until(c.ctx, c.res.Value()) || c.ctx.Err() != nil {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsOk() && c.ctx.Err() == nil && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsOk() {
		if onSuccess != nil {
			onSuccess(c.ctx, c.res.Value())
		}
		return c
	}
	if onFailure != nil {
		onFailure(c.ctx, c.res.Err())
	}
	return c
}

// Then chains a function that switches the chain to rop.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
