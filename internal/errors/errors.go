package errors

import (
	"errors"
	"fmt"
	"time"
)

// LineProbeError is the base interface for all harness errors.
type LineProbeError interface {
	error
	IsLineProbeError() bool
}

// Compile-time verification that all error types implement LineProbeError.
var (
	_ LineProbeError = (*ReadTimeoutError)(nil)
	_ LineProbeError = (*WriteTimeoutError)(nil)
	_ LineProbeError = (*ProbeNotFoundError)(nil)
	_ LineProbeError = (*SpawnError)(nil)
)

// Compile-time verification that the timeout errors carry the Timeout()
// method os.IsTimeout looks for.
var (
	_ interface{ Timeout() bool } = (*ReadTimeoutError)(nil)
	_ interface{ Timeout() bool } = (*WriteTimeoutError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionClosed indicates the session has been closed and cannot be
	// reused. Sessions are single-use; spawn a new one with Spawn().
	ErrSessionClosed = errors.New("session closed: sessions are single-use, spawn a new one with Spawn()")
)

// ReadTimeoutError indicates no complete reply line became available within
// the allotted time.
type ReadTimeoutError struct {
	// Budget is the time budget the read was given.
	Budget time.Duration

	// Buffered is the number of bytes of an incomplete line that had
	// accumulated when the budget ran out.
	Buffered int
}

func (e *ReadTimeoutError) Error() string {
	return fmt.Sprintf("read reply timed out after %s (%d bytes buffered, no newline)", e.Budget, e.Buffered)
}

// IsLineProbeError implements LineProbeError.
func (e *ReadTimeoutError) IsLineProbeError() bool { return true }

// Timeout marks this error as a timeout for os.IsTimeout.
func (e *ReadTimeoutError) Timeout() bool { return true }

// WriteTimeoutError indicates not all command bytes could be delivered within
// the allotted time.
type WriteTimeoutError struct {
	// Budget is the time budget the write was given.
	Budget time.Duration

	// Unwritten is the number of command bytes still undelivered when the
	// budget ran out.
	Unwritten int
}

func (e *WriteTimeoutError) Error() string {
	return fmt.Sprintf("write command timed out after %s (%d bytes unwritten)", e.Budget, e.Unwritten)
}

// IsLineProbeError implements LineProbeError.
func (e *WriteTimeoutError) IsLineProbeError() bool { return true }

// Timeout marks this error as a timeout for os.IsTimeout.
func (e *WriteTimeoutError) Timeout() bool { return true }

// ProbeNotFoundError indicates the probe binary was not found.
type ProbeNotFoundError struct {
	SearchedPaths []string
}

func (e *ProbeNotFoundError) Error() string {
	return fmt.Sprintf("probe binary not found in: %v", e.SearchedPaths)
}

// IsLineProbeError implements LineProbeError.
func (e *ProbeNotFoundError) IsLineProbeError() bool { return true }

// SpawnError indicates the probe process failed to start.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn probe %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsLineProbeError implements LineProbeError.
func (e *SpawnError) IsLineProbeError() bool { return true }
