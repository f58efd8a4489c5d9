// Package xerrors provides generic error wrapping, allowing any data type to be carried alongside an error.
package xerrors

import (
	"errors"
	"log/slog"
)

// ExtendedError wraps an error together with a typed piece of data.
type ExtendedError[T any] struct {
	Data T
	err  error
}

// Error meets the error interface by returning the Error() of the underlying.
func (e ExtendedError[T]) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying wrapped error.
func (e ExtendedError[T]) Unwrap() error {
	return e.err
}

// LogValue implements slog.LogValuer, surfacing the extended data.
// The error message itself is handled at a higher level to avoid redundancy.
func (e ExtendedError[T]) LogValue() slog.Value {
	if logValuer, ok := any(e.Data).(slog.LogValuer); ok {
		return logValuer.LogValue()
	}
	return slog.AnyValue(e.Data)
}

// Extend wraps err with the given data. Extending nil is nil.
func Extend[T any](data T, err error) error {
	if err == nil {
		return nil
	}
	return ExtendedError[T]{Data: data, err: err}
}

// Extract returns the data of type T attached to err, searching the whole
// wrap chain. If the same type was attached more than once, the outermost
// match wins.
func Extract[T any](err error) (T, bool) {
	var extendedError ExtendedError[T]
	ok := errors.As(err, &extendedError)
	return extendedError.Data, ok
}

// Unjoin returns the underlying errors if err was joined with errors.Join,
// or err itself as a single-element slice otherwise.
func Unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joinedErrs, ok := err.(interface{ Unwrap() []error }); ok {
		return joinedErrs.Unwrap()
	}
	return []error{err}
}
