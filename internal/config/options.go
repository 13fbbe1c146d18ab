package config

import (
	"io"
	"log/slog"
	"time"
)

// DefaultTimeout bounds command writes and reply reads that are not given an
// explicit budget. It matches the pace of a probe answering interactively:
// long enough for a slow child, short enough that a wedged one fails the
// test instead of hanging it.
const DefaultTimeout = 10 * time.Second

// Options configures a probe session.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// ProbePath is the explicit path to the probe binary.
	// If empty, the LINEPROBE_BIN environment variable is consulted, then
	// the default relative path ./probe.
	ProbePath string

	// Args holds extra command-line arguments for the probe binary.
	Args []string

	// DefaultTimeout bounds WriteCommand and ReadReply calls that do not
	// take an explicit timeout. Zero or negative means DefaultTimeout.
	DefaultTimeout time.Duration

	// Stderr is the destination for the probe's standard error stream.
	// If nil, the probe inherits the harness process's stderr; only stdin
	// and stdout are ever redirected to harness pipes.
	Stderr io.Writer
}
