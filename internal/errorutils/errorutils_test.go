package errorutils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoinFlattensNestedMultiErrors(t *testing.T) {
	err1 := errors.New("bar")
	err2 := fmt.Errorf("foo: %w", err1)

	err3 := errors.New("fo")
	err4 := fmt.Errorf("barr: %w", err3)

	err := Join(Join(nil, err2), Join(nil, err4, nil))

	multi, ok := err.(*MultiError)
	require.True(t, ok)
	require.Len(t, multi.Unwrap(), 2)
	require.Contains(t, multi.Error(), "foo: bar")
	require.Contains(t, multi.Error(), "barr: fo")
}

func TestJoinNils(t *testing.T) {
	err := Join(nil, nil)
	require.Nil(t, err)
}

func TestDeepMultiErrorUnwrapNil(t *testing.T) {
	require.Nil(t, deepUnwrapMultiError(nil))
}
