package lineprobe

import (
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/lineprobe/lineprobe-go/internal/config"
	"github.com/lineprobe/lineprobe-go/internal/pipeio"
	"github.com/lineprobe/lineprobe-go/internal/proc"
)

// DefaultTimeout bounds WriteCommand, ReadReply and RoundTrip when the
// session is not configured otherwise. The *Timeout method variants override
// it per call.
const DefaultTimeout = config.DefaultTimeout

// Session is one running probe instance under test: the child process, the
// parent ends of its stdin/stdout pipes, and the buffer accumulating reply
// bytes until a complete line is available.
//
// A Session belongs to a single test case and is driven from one goroutine;
// it is never reused across tests. Every I/O operation is bounded by a
// timeout and fails with a catchable timeout error instead of hanging, no
// matter how wedged the probe is.
type Session struct {
	log     *slog.Logger
	id      string
	timeout time.Duration

	child *proc.Child
	conn  *pipeio.Conn

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
}

// Spawn starts a probe child process and returns a Session ready for
// command/reply exchanges.
//
// The probe binary comes from the WithProbe option, the LINEPROBE_BIN
// environment variable, or the default ./probe, in that order. The child's
// stdin and stdout are redirected to harness pipes and both parent-side
// descriptors are placed in non-blocking mode before any I/O; stderr passes
// through untouched unless WithStderr redirects it.
//
// Returns *ProbeNotFoundError when no binary can be located and *SpawnError
// when the process fails to start.
func Spawn(opts ...Option) (*Session, error) {
	options := applySessionOptions(opts)

	id := ulid.Make().String()

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	log = log.With("component", "session", "session_id", id)

	path, err := proc.Resolve(options.ProbePath, log)
	if err != nil {
		return nil, err
	}

	child, err := proc.Spawn(log, path, options.Args, options.Stderr)
	if err != nil {
		return nil, err
	}

	conn, err := pipeio.NewConn(log, child.Stdout, child.Stdin)
	if err != nil {
		_ = child.Stdin.Close()
		_ = child.Stdout.Close()

		child.Terminate()

		return nil, &SpawnError{Path: path, Err: err}
	}

	timeout := options.DefaultTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log.Info("session ready", "probe", path, "pid", child.Pid(), "default_timeout", timeout)

	return &Session{
		log:     log,
		id:      id,
		timeout: timeout,
		child:   child,
		conn:    conn,
	}, nil
}

// WriteCommand sends one command line to the probe using the session's
// default timeout.
func (s *Session) WriteCommand(text string) error {
	return s.WriteCommandTimeout(text, s.timeout)
}

// WriteCommandTimeout sends one command line to the probe, failing with a
// *WriteTimeoutError if the probe has not accepted every byte within the
// budget. The command must not itself contain a newline; an embedded newline
// would be framed by the probe as a second command.
//
// Transient pipe conditions (a full buffer, an interrupted call) are retried
// within the budget and never surfaced. The budget is a floor: delivery that
// completes during a final wait still succeeds.
func (s *Session) WriteCommandTimeout(text string, timeout time.Duration) error {
	if err := s.guard(); err != nil {
		return err
	}

	return s.conn.WriteLine(text, timeout)
}

// ReadReply returns the next reply line from the probe using the session's
// default timeout.
func (s *Session) ReadReply() (string, error) {
	return s.ReadReplyTimeout(s.timeout)
}

// ReadReplyTimeout returns the next reply line, delimiter stripped, failing
// with a *ReadTimeoutError if no complete line is available within the
// budget.
//
// Replies come back in arrival order, one line per call, and no line is ever
// returned twice. Commands may be pipelined: several WriteCommand calls can
// be issued before draining the replies, and a reply already buffered from
// an earlier read is returned without waiting.
func (s *Session) ReadReplyTimeout(timeout time.Duration) (string, error) {
	if err := s.guard(); err != nil {
		return "", err
	}

	return s.conn.ReadLine(timeout)
}

// RoundTrip sends one command and returns the probe's next reply line, both
// bounded by the session's default timeout.
func (s *Session) RoundTrip(text string) (string, error) {
	if err := s.WriteCommand(text); err != nil {
		return "", err
	}

	return s.ReadReply()
}

// ID returns the session's ULID, which is also attached to every log record
// the session emits.
func (s *Session) ID() string {
	return s.id
}

// Pid returns the probe process's ID.
func (s *Session) Pid() int {
	return s.child.Pid()
}

// guard fails fast once the session is closed.
func (s *Session) guard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	return nil
}

// Close tears the session down: the probe's input pipe is closed, then its
// output pipe, then the process is force-terminated and reaped.
//
// Teardown is idempotent and never fails; a probe that already exited on its
// own is expected and tolerated. Close always returns nil, keeping the
// io.Closer shape for defer chains.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()

		s.conn.Close()
		s.child.Terminate()

		s.log.Info("session closed")
	})

	return nil
}
