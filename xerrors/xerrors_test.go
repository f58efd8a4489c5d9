package xerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-labs/go-maplist/xerrors"
)

var errTest = errors.New("this is a test error")

func rewrap(err error) error {
	return fmt.Errorf("wrapping: %w", err)
}

func TestExtendedError(t *testing.T) {
	t.Parallel()

	type position struct {
		Index int
	}

	type label struct {
		Name string
	}

	type never struct{}

	p := position{Index: 3}
	l := label{Name: "cycle"}

	// extending nil is still nil
	assert.NoError(t, xerrors.Extend(p, nil))

	// extended errors still match the sentinel through errors.Is,
	// no matter how deeply they are rewrapped
	e1 := xerrors.Extend(p, errTest)
	e2 := xerrors.Extend(l, e1)
	e3 := rewrap(rewrap(e2))
	assert.ErrorIs(t, e3, errTest)
	assert.ErrorIs(t, e3, e1)

	// both attached data values are recoverable from the outermost error
	gotP, ok := xerrors.Extract[position](e3)
	require.True(t, ok)
	assert.Equal(t, p, gotP)

	gotL, ok := xerrors.Extract[label](e3)
	require.True(t, ok)
	assert.Equal(t, l, gotL)

	// data that was never attached is not found
	_, ok = xerrors.Extract[never](e3)
	assert.False(t, ok)
}

func TestExtractSameTypeOutermostWins(t *testing.T) {
	t.Parallel()

	type label struct {
		Name string
	}

	inner := label{Name: "inner"}
	outer := label{Name: "outer"}

	e1 := xerrors.Extend(inner, errTest)
	e2 := xerrors.Extend(outer, e1)

	got, ok := xerrors.Extract[label](e2)
	require.True(t, ok)
	assert.Equal(t, outer, got)

	// unwrapping by hand still reaches the inner value
	got, ok = xerrors.Extract[label](errors.Unwrap(e2))
	require.True(t, ok)
	assert.Equal(t, inner, got)
}

func TestExtractDistinguishesTypedefs(t *testing.T) {
	t.Parallel()

	type kindA int
	type kindB int

	e1 := xerrors.Extend(kindA(2), errTest)
	e2 := xerrors.Extend(kindB(1), e1)

	a, ok := xerrors.Extract[kindA](e2)
	require.True(t, ok)
	assert.Equal(t, kindA(2), a)

	b, ok := xerrors.Extract[kindB](e2)
	require.True(t, ok)
	assert.Equal(t, kindB(1), b)

	_, ok = xerrors.Extract[kindB](e1)
	assert.False(t, ok)
}

func TestUnjoin(t *testing.T) {
	t.Parallel()

	assert.Nil(t, xerrors.Unjoin(nil))

	single := errors.New("error message")
	assert.Equal(t, []error{single}, xerrors.Unjoin(single))

	err1 := errors.New("error 1")
	err2 := errors.New("error 2")
	assert.ElementsMatch(t, []error{err1, err2}, xerrors.Unjoin(errors.Join(err1, err2)))
}
