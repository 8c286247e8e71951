package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmpty is reported by a zero Result that was never constructed.
	ErrEmpty = errors.New("rop: empty result")
	// ErrNilError replaces a nil error passed to Err or Cancel.
	ErrNilError = errors.New("rop: nil error")
)

type state uint8

const (
	stateEmpty state = iota
	stateOk
	stateErr
	stateCancel
)

// Result holds either a value (Ok) or an error (Err). Cancel is an Err
// that records the failure came from cancellation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	state     state
}

func newResult[T any](s state, v T, err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		err:       err,
		state:     s,
	}
}

func Ok[T any](v T) Result[T] {
	return newResult(stateOk, v, nil)
}

func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	var zero T
	return newResult(stateErr, zero, err)
}

func Cancel[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	var zero T
	return newResult(stateCancel, zero, err)
}

// Success is an alias of Ok.
func Success[T any](v T) Result[T] { return Ok(v) }

// Fail is an alias of Err.
func Fail[T any](err error) Result[T] { return Err[T](err) }

// From converts the (value, error) idiom into a Result. Cancellation
// errors produce a Cancel.
func From[T any](v T, err error) Result[T] {
	switch {
	case err == nil:
		return Ok(v)
	case IsCancellationError(err):
		return Cancel[T](err)
	default:
		return Err[T](err)
	}
}

// CancelFrom re-types a failed result, keeping its error, variant and id.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.Err(),
		state:     failedState(from.state),
	}
}

func failedState(s state) state {
	if s == stateCancel {
		return stateCancel
	}
	return stateErr
}

func (r Result[T]) IsOk() bool {
	return r.state == stateOk
}

// IsErr reports true for Err, Cancel and empty results.
func (r Result[T]) IsErr() bool {
	return r.state != stateOk
}

func (r Result[T]) IsCancel() bool {
	return r.state == stateCancel
}

func (r Result[T]) IsEmpty() bool {
	return r.state == stateEmpty
}

// IsSuccess and IsFailure mirror IsOk and IsErr for pipeline code.
func (r Result[T]) IsSuccess() bool { return r.IsOk() }
func (r Result[T]) IsFailure() bool { return r.IsErr() }

// Value returns the Ok value, or the zero T otherwise.
func (r Result[T]) Value() T {
	if r.state != stateOk {
		var zero T
		return zero
	}
	return r.value
}

// Result is the pipeline spelling of Value.
func (r Result[T]) Result() T { return r.Value() }

// Err returns the error of a failed result and nil for Ok.
func (r Result[T]) Err() error {
	if r.state == stateEmpty {
		return ErrEmpty
	}
	return r.err
}

func (r Result[T]) Get() (T, error) {
	return r.Value(), r.Err()
}

func (r Result[T]) ValueOr(def T) T {
	if r.IsOk() {
		return r.value
	}
	return def
}

// MustValue panics with the error when r is not Ok.
func (r Result[T]) MustValue() T {
	if !r.IsOk() {
		panic(r.Err())
	}
	return r.value
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	switch r.state {
	case stateOk:
		return fmt.Sprintf("Ok(%v)", r.value)
	case stateErr:
		return fmt.Sprintf("Err(%v)", r.err)
	case stateCancel:
		return fmt.Sprintf("Cancel(%v)", r.err)
	default:
		return "Empty"
	}
}
