package rop

import "errors"

// Map applies f to the value of an Ok result. Failures pass through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.IsOk() {
		return CancelFrom[T, U](r)
	}
	return Ok(f(r.value))
}

// AndThen applies f to the value of an Ok result and returns what f
// returns, failure included.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.IsOk() {
		return CancelFrom[T, U](r)
	}
	return f(r.value)
}

// MapErr applies f to the error of a failed result. A cancel stays a cancel.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.IsOk() {
		return r
	}
	if r.IsCancel() {
		return Cancel[T](f(r.Err()))
	}
	return Err[T](f(r.Err()))
}

// OrElse gives a failed result a chance to recover.
func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.IsOk() {
		return r
	}
	return f(r.Err())
}

// Conjunct returns other when r is Ok, otherwise r's failure.
func Conjunct[T, U any](r Result[T], other Result[U]) Result[U] {
	if !r.IsOk() {
		return CancelFrom[T, U](r)
	}
	return other
}

// And is Conjunct for results of the same type.
func (r Result[T]) And(other Result[T]) Result[T] {
	return Conjunct(r, other)
}

// Disjunct returns r when it is Ok, otherwise other.
func (r Result[T]) Disjunct(other Result[T]) Result[T] {
	if r.IsOk() {
		return r
	}
	return other
}

func (r Result[T]) Or(other Result[T]) Result[T] {
	return r.Disjunct(other)
}

func Flatten[T any](r Result[Result[T]]) Result[T] {
	return AndThen(r, func(inner Result[T]) Result[T] { return inner })
}

// Collect turns a slice of results into a result of a slice. The first
// failure wins.
func Collect[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.IsOk() {
			return CancelFrom[T, []T](r)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Partition splits results into values and errors, keeping order.
func Partition[T any](rs []Result[T]) ([]T, []error) {
	values := make([]T, 0, len(rs))
	errs := make([]error, 0)
	for _, r := range rs {
		if r.IsOk() {
			values = append(values, r.value)
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// JoinErrs folds every failure into one errors.Join error. It returns nil
// when all results are Ok.
func JoinErrs[T any](rs ...Result[T]) error {
	_, errs := Partition(rs)
	return errors.Join(errs...)
}
