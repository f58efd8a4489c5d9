// Package maplist applies an ordered list of unary transformations across a
// sequence of inputs, selecting the transformation for each element by
// position: either by direct index until the list runs out (MapList), or by
// index modulo the list length so the transformations repeat (MapCycle).
package maplist

import (
	"errors"

	"github.com/kestrel-labs/go-maplist/xerrors/errclass"
	"github.com/kestrel-labs/go-maplist/xerrors/stacktrace"
)

// ErrNoTransformations is returned by the cycling operations when the
// transformation list is empty: position selection is index modulo the list
// length, which is undefined for a zero-length list.
var ErrNoTransformations = errors.New("maplist: transformation list is empty")

type (
	// Transformation maps one input element to zero-or-one outputs.
	// The boolean reports whether an output was produced; (zero, false)
	// contributes nothing to the result.
	//
	// A nil Transformation is the explicit "no transformation at this
	// position" marker and maps its element to no output.
	Transformation[S, T any] func(S) (T, bool)

	// TryTransformation is a Transformation that may fail. A non-nil error
	// aborts the traversal immediately; no partial result is returned.
	TryTransformation[S, T any] func(S) (T, bool, error)
)

// Lift adapts a plain function into a Transformation that always produces
// an output.
func Lift[S, T any](f func(S) T) Transformation[S, T] {
	return func(s S) (T, bool) {
		return f(s), true
	}
}

// Identity returns a Transformation that yields each element unchanged.
func Identity[T any]() Transformation[T, T] {
	return func(v T) (T, bool) {
		return v, true
	}
}

// MapList applies transforms[i] to inputs[i] for each position i, collecting
// the produced outputs in input order. Positions beyond the end of the
// transformation list contribute nothing, so the result holds at most
// min(len(transforms), len(inputs)) elements. An empty transformation list
// yields an empty result for any input.
func MapList[S, T any](transforms []Transformation[S, T], inputs []S) []T {
	out := make([]T, 0, min(len(transforms), len(inputs)))
	for i, in := range inputs {
		if i >= len(transforms) {
			break
		}
		if t := transforms[i]; t != nil {
			if v, ok := t(in); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// MapCycle applies transforms[i % len(transforms)] to inputs[i] for each
// position i, collecting the produced outputs in input order. Every input
// element is mapped; an element is omitted from the result only when its
// transformation produced no output.
//
// An empty transformation list is rejected up front with
// ErrNoTransformations (classified errclass.InvalidArgument), regardless of
// input length.
func MapCycle[S, T any](transforms []Transformation[S, T], inputs []S) ([]T, error) {
	if len(transforms) == 0 {
		return nil, errNoTransformations()
	}
	out := make([]T, 0, len(inputs))
	for i, in := range inputs {
		if t := transforms[i%len(transforms)]; t != nil {
			if v, ok := t(in); ok {
				out = append(out, v)
			}
		}
	}
	return out, nil
}

// TryMapList is MapList over fallible transformations. The first error
// returned by a transformation aborts the traversal and is returned with a
// stack trace attached; transformations at later positions are not invoked.
func TryMapList[S, T any](transforms []TryTransformation[S, T], inputs []S) ([]T, error) {
	out := make([]T, 0, min(len(transforms), len(inputs)))
	for i, in := range inputs {
		if i >= len(transforms) {
			break
		}
		t := transforms[i]
		if t == nil {
			continue
		}
		v, ok, err := t(in)
		if err != nil {
			return nil, stacktrace.Wrap(err)
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// TryMapCycle is MapCycle over fallible transformations, with the same
// empty-list precondition and the same abort-on-first-error behavior as
// TryMapList.
func TryMapCycle[S, T any](transforms []TryTransformation[S, T], inputs []S) ([]T, error) {
	if len(transforms) == 0 {
		return nil, errNoTransformations()
	}
	out := make([]T, 0, len(inputs))
	for i, in := range inputs {
		t := transforms[i%len(transforms)]
		if t == nil {
			continue
		}
		v, ok, err := t(in)
		if err != nil {
			return nil, stacktrace.Wrap(err)
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func errNoTransformations() error {
	return stacktrace.Wrap(errclass.WrapAs(ErrNoTransformations, errclass.InvalidArgument))
}
