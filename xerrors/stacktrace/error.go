package stacktrace

import (
	"errors"
	"sync/atomic"

	"github.com/kestrel-labs/go-maplist/xerrors"
)

// depth of stack to ignore so that callers of Wrap don't see the call to Wrap itself.
const wrapStackDepth = 4

// Disabled disables stacktrace collection in Wrap when set to true.
var Disabled atomic.Bool

// Wrap extends an error by including a stack trace at the point where this was called.
// If the error already contains a stack trace, it is not wrapped again.
// For joined errors, the wrap is applied to each individual error.
func Wrap(err error) error {
	if Disabled.Load() || err == nil {
		return err
	}

	if joinedErrors := xerrors.Unjoin(err); len(joinedErrors) > 1 {
		wrappedErrors := make([]error, len(joinedErrors))
		for i, e := range joinedErrors {
			wrappedErrors[i] = Wrap(e)
		}
		return errors.Join(wrappedErrors...)
	}

	return wrapSingleError(err)
}

func wrapSingleError(err error) error {
	if _, ok := xerrors.Extract[StackTrace](err); !ok {
		return xerrors.Extend(GetStack(wrapStackDepth, true), err)
	}
	return err
}

// Extract returns the StackTrace embedded in the error if it exists.
func Extract(err error) StackTrace {
	st, ok := xerrors.Extract[StackTrace](err)
	if !ok {
		return nil
	}
	return st
}
