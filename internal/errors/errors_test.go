package errors

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadTimeoutError(t *testing.T) {
	err := &ReadTimeoutError{
		Budget:   10 * time.Second,
		Buffered: 12,
	}

	require.Equal(
		t,
		"read reply timed out after 10s (12 bytes buffered, no newline)",
		err.Error(),
	)
	require.True(t, err.IsLineProbeError())
	require.True(t, os.IsTimeout(err))
}

func TestWriteTimeoutError(t *testing.T) {
	err := &WriteTimeoutError{
		Budget:    500 * time.Millisecond,
		Unwritten: 4096,
	}

	require.Equal(
		t,
		"write command timed out after 500ms (4096 bytes unwritten)",
		err.Error(),
	)
	require.True(t, err.IsLineProbeError())
	require.True(t, os.IsTimeout(err))
}

func TestProbeNotFoundError(t *testing.T) {
	err := &ProbeNotFoundError{
		SearchedPaths: []string{"$LINEPROBE_BIN", "./probe"},
	}

	require.Equal(
		t,
		"probe binary not found in: [$LINEPROBE_BIN ./probe]",
		err.Error(),
	)
	require.True(t, err.IsLineProbeError())
}

func TestSpawnError(t *testing.T) {
	root := errors.New("fork/exec: permission denied")
	err := &SpawnError{Path: "./probe", Err: root}

	require.Equal(t, "failed to spawn probe ./probe: fork/exec: permission denied", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsLineProbeError())
}

func TestNonTimeoutErrorsAreNotTimeouts(t *testing.T) {
	require.False(t, os.IsTimeout(&ProbeNotFoundError{}))
	require.False(t, os.IsTimeout(&SpawnError{Path: "./probe", Err: errors.New("boom")}))
	require.False(t, os.IsTimeout(ErrSessionClosed))
}
