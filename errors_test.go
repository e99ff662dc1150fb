package linegrep

import (
	"fmt"
	"testing"

	"github.com/peco/linegrep/internal/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	require.NoError(t, Wrap(ReadError, nil), "wrapping nil should yield nil")

	cause := errors.New("boom")
	err := Wrap(ReadError, cause)
	require.Error(t, err)
	require.Equal(t, "failed to read input: boom", err.Error())
	require.True(t, IsKind(err, ReadError))
	require.False(t, IsKind(err, OpenFile))
	require.Equal(t, cause, errors.Cause(err), "Cause should reach the original error")
	require.True(t, errors.Is(err, cause), "Unwrap should reach the original error")

	again := Wrap(OpenFile, err)
	require.Equal(t, err, again, "an *Error should not be wrapped twice")
	require.True(t, IsKind(again, ReadError))

	outer := fmt.Errorf("scan: %w", err)
	require.True(t, IsKind(outer, ReadError), "IsKind should see through wrapping")
	require.False(t, IsKind(cause, ReadError))
}

func TestErrorExitStatus(t *testing.T) {
	err := Wrap(InvalidPattern, errors.New("bad"))
	st, ok := util.GetExitStatus(err)
	require.True(t, ok, "*Error should report its own exit status")
	require.Equal(t, 1, st)
}

func TestKindString(t *testing.T) {
	kinds := []Kind{MissingArgument, InvalidOption, InvalidPattern, ConfigError, OpenFile, ReadError, WriteError}
	seen := map[string]struct{}{}
	for _, k := range kinds {
		s := k.String()
		require.NotEmpty(t, s)
		_, dup := seen[s]
		require.False(t, dup, "message for kind %d should be unique", int(k))
		seen[s] = struct{}{}
	}
	require.Equal(t, "unknown error kind 99", Kind(99).String())
}

func TestExpectArg(t *testing.T) {
	args := []string{"foo", "bar"}

	v, err := expectArg(&args, "pattern")
	require.NoError(t, err)
	require.Equal(t, "foo", v)
	require.Equal(t, []string{"bar"}, args)

	v, err = expectArg(&args, "path")
	require.NoError(t, err)
	require.Equal(t, "bar", v)
	require.Empty(t, args)

	_, err = expectArg(&args, "path")
	require.Error(t, err)
	require.True(t, IsKind(err, MissingArgument))
	require.Contains(t, err.Error(), "missing path")
}
