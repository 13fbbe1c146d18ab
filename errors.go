package lineprobe

import "github.com/lineprobe/lineprobe-go/internal/errors"

// Re-export error types from internal package

// ReadTimeoutError indicates no complete reply line arrived within the
// budget. Satisfies os.IsTimeout.
type ReadTimeoutError = errors.ReadTimeoutError

// WriteTimeoutError indicates a command could not be fully delivered within
// the budget. Satisfies os.IsTimeout.
type WriteTimeoutError = errors.WriteTimeoutError

// ProbeNotFoundError indicates the probe binary was not found.
type ProbeNotFoundError = errors.ProbeNotFoundError

// SpawnError indicates the probe process failed to start.
type SpawnError = errors.SpawnError

// LineProbeError is the base interface for all harness errors.
type LineProbeError = errors.LineProbeError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionClosed indicates the session has been closed and cannot be reused.
	ErrSessionClosed = errors.ErrSessionClosed
)
