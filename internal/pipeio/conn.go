package pipeio

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lineprobe/lineprobe-go/internal/errors"
)

const (
	// readChunkSize is the number of bytes requested from the pipe per read
	// attempt. Replies longer than this are assembled across attempts.
	readChunkSize = 1024

	// delim terminates every protocol message in both directions.
	delim = '\n'

	// minPollInterval floors the deadline armed before each I/O attempt.
	// A deadline already in the past fails the attempt without looking at
	// the pipe, and the loops are required to make one more attempt after
	// the nominal budget expires. It also paces attempts that failed
	// without parking in the poller, so a vanished peer cannot turn the
	// loop into a busy spin.
	minPollInterval = time.Millisecond
)

// Conn is the duplex, timeout-bounded line transport for one probe session.
// The write side carries commands to the child, the read side carries
// replies back, and buf accumulates reply bytes until a full line is
// available.
//
// A Conn is owned by a single logical thread of control and does no internal
// locking around its buffer or descriptors; only Close is guarded so the
// descriptors are released exactly once.
type Conn struct {
	log *slog.Logger
	r   *os.File
	w   *os.File
	buf []byte

	closeOnce sync.Once
}

// NewConn wraps the parent ends of a probe's stdout (r) and stdin (w) pipes.
// Both descriptors are marked non-blocking before any I/O is attempted.
func NewConn(log *slog.Logger, r, w *os.File) (*Conn, error) {
	if err := SetNonblocking(r); err != nil {
		return nil, err
	}

	if err := SetNonblocking(w); err != nil {
		return nil, err
	}

	return &Conn{
		log: log.With("component", "pipeio"),
		r:   r,
		w:   w,
	}, nil
}

// WriteLine frames text as one protocol line and delivers it to the child,
// retrying partial writes until every byte has been handed to the pipe or
// the budget runs out.
//
// The budget is computed once at entry and re-derived every iteration, so no
// single wait can park past the original deadline no matter how many partial
// writes it takes. A transient write failure counts as zero bytes written
// and the loop keeps going. The timeout is checked only after one more
// attempt past nominal expiry and surfaces as *errors.WriteTimeoutError.
func (c *Conn) WriteLine(text string, timeout time.Duration) error {
	remaining := append([]byte(text), delim)
	total := len(remaining)
	start := time.Now()

	for {
		elapsed := time.Since(start)

		wait := timeout - elapsed
		if wait < minPollInterval {
			wait = minPollInterval
		}

		_ = c.w.SetWriteDeadline(time.Now().Add(wait))

		n, err := c.w.Write(remaining)
		remaining = remaining[n:]

		if len(remaining) == 0 {
			c.log.Debug("command line written", "bytes", total)

			return nil
		}

		if err != nil && !stderrors.Is(err, os.ErrDeadlineExceeded) {
			// Broken pipes and closed descriptors fail without waiting;
			// pace the retry.
			time.Sleep(minPollInterval)
		}

		if elapsed >= timeout {
			c.log.Debug("write command timed out", "timeout", timeout, "unwritten", len(remaining))

			return &errors.WriteTimeoutError{Budget: timeout, Unwritten: len(remaining)}
		}
	}
}

// ReadLine returns the next complete reply line, delimiter stripped.
//
// A line already sitting in the accumulation buffer is consumed without
// touching the pipe. Otherwise bytes are read in chunks and appended until a
// delimiter shows up; transient read failures, and end-of-file from a child
// that went away, count as "no bytes this pass" and are retried within the
// budget. The delimiter search runs before the timeout check on every
// iteration, against the elapsed value computed before the wait, so a line
// that arrived during the final wait is returned rather than discarded. On
// timeout the error is *errors.ReadTimeoutError.
func (c *Conn) ReadLine(timeout time.Duration) (string, error) {
	if line, ok := c.takeLine(); ok {
		return line, nil
	}

	chunk := make([]byte, readChunkSize)
	start := time.Now()

	for {
		elapsed := time.Since(start)

		wait := timeout - elapsed
		if wait < minPollInterval {
			wait = minPollInterval
		}

		_ = c.r.SetReadDeadline(time.Now().Add(wait))

		n, err := c.r.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
		}

		if line, ok := c.takeLine(); ok {
			return line, nil
		}

		if n == 0 && err != nil && !stderrors.Is(err, os.ErrDeadlineExceeded) {
			// EOF and hard errors return without waiting; pace the retry.
			time.Sleep(minPollInterval)
		}

		if elapsed >= timeout {
			c.log.Debug("read reply timed out", "timeout", timeout, "buffered", len(c.buf))

			return "", &errors.ReadTimeoutError{Budget: timeout, Buffered: len(c.buf)}
		}
	}
}

// takeLine consumes the first complete line from the accumulation buffer.
// The buffer is advanced past the line's delimiter; further buffered lines
// stay put for the next call.
func (c *Conn) takeLine() (string, bool) {
	ix := bytes.IndexByte(c.buf, delim)
	if ix < 0 {
		return "", false
	}

	line := string(c.buf[:ix])
	c.buf = append(c.buf[:0], c.buf[ix+1:]...)

	return line, true
}

// Buffered reports how many reply bytes have been received but not yet
// consumed as complete lines.
func (c *Conn) Buffered() int {
	return len(c.buf)
}

// Close releases both pipe ends, input side first. Closing is idempotent
// and close errors are discarded.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		_ = c.w.Close()
		_ = c.r.Close()

		c.log.Debug("pipe descriptors closed")
	})
}
