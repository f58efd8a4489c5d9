// Package errclass provides functions for simple error classification.
package errclass

import (
	"github.com/kestrel-labs/go-maplist/xerrors"
)

// Class represents a kind of error.
type Class int

// These are the allowed error classifications.
// The values are arbitrary but provide a strict ordering,
// where the higher the value, the more severe the error.
// When determining the class of a joined error, the highest
// class is returned.
const (
	Nil     Class = -1
	Unknown Class = 0

	// InvalidArgument marks errors caused by a caller violating a
	// documented precondition.
	InvalidArgument Class = 100
)

// String implements stringer interface.
func (c Class) String() string {
	switch c {
	case Nil:
		return "nil"
	case InvalidArgument:
		return "invalid argument"
	default:
		return "unknown"
	}
}

// WrapAs extends an error with the given class data.
func WrapAs(err error, class Class) error {
	if err == nil {
		return nil
	}
	return xerrors.Extend(class, err)
}

// GetClass extracts the Class from an error.
func GetClass(err error) Class {
	if err == nil {
		return Nil
	}

	maxClass := Nil
	for _, joinedErr := range xerrors.Unjoin(err) {
		class, ok := xerrors.Extract[Class](joinedErr)
		if ok && class > maxClass {
			maxClass = class
		} else if !ok && maxClass < Unknown {
			maxClass = Unknown
		}
	}
	return maxClass
}
