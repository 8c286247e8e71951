package rop

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports a nil interface or an interface holding a nil pointer.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors flattens an errors.Join tree into its leaves.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	out := make([]error, 0)
	for _, e := range joined.Unwrap() {
		out = append(out, GetErrors(e)...)
	}
	return out
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
