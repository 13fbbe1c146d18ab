package lineprobe

import (
	"io"
	"log/slog"
	"time"

	"github.com/lineprobe/lineprobe-go/internal/config"
)

// SessionOptions configures a probe session. Most callers use the With*
// functional options instead of filling this in directly.
type SessionOptions = config.Options

// Option configures SessionOptions using the functional options pattern.
type Option func(*SessionOptions)

// applySessionOptions applies functional options to a SessionOptions struct.
func applySessionOptions(opts []Option) *SessionOptions {
	options := &SessionOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *SessionOptions) {
		o.Logger = logger
	}
}

// WithProbe sets the explicit path to the probe binary, overriding the
// LINEPROBE_BIN environment variable and the default ./probe. A bare name is
// resolved through the system PATH.
func WithProbe(path string) Option {
	return func(o *SessionOptions) {
		o.ProbePath = path
	}
}

// WithArgs passes extra command-line arguments to the probe binary.
func WithArgs(args ...string) Option {
	return func(o *SessionOptions) {
		o.Args = args
	}
}

// WithDefaultTimeout sets the budget for WriteCommand, ReadReply and
// RoundTrip. Zero or negative means DefaultTimeout.
func WithDefaultTimeout(timeout time.Duration) Option {
	return func(o *SessionOptions) {
		o.DefaultTimeout = timeout
	}
}

// WithStderr redirects the probe's standard error stream. By default the
// probe inherits the harness process's stderr; only stdin and stdout are
// ever redirected to harness pipes.
func WithStderr(w io.Writer) Option {
	return func(o *SessionOptions) {
		o.Stderr = w
	}
}
