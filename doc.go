// Package lineprobe is a test harness for line-oriented request/reply
// protocols spoken over pipes with a long-lived child process.
//
// A Session spawns the probe binary under test with its stdin and stdout
// redirected to harness-controlled pipes, then exchanges newline-delimited
// UTF-8 text with it: WriteCommand pushes one command line, ReadReply pulls
// one reply line. Both are bounded by a timeout and never hang: a stalled
// probe, a full input pipe or an empty output pipe turns into a catchable
// timeout error instead of a wedged test run. The content of each line is
// the probe's contract, not the harness's; lineprobe moves lines, it does
// not parse them.
//
// # Basic Usage
//
// Spawn a session, exchange lines, and close it:
//
//	session, err := lineprobe.Spawn(
//	    lineprobe.WithProbe("./probe"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Close()
//
//	if err := session.WriteCommand("ping"); err != nil {
//	    log.Fatal(err)
//	}
//	reply, err := session.ReadReply()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(reply)
//
// Or let WithSession manage the lifecycle:
//
//	err := lineprobe.WithSession(func(s *lineprobe.Session) error {
//	    reply, err := s.RoundTrip("ping")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(reply)
//	    return nil
//	})
//
// # Pipelining
//
// Commands may be issued back-to-back before any reply is drained. Replies
// come back in arrival order, one line per ReadReply call:
//
//	_ = session.WriteCommand("a")
//	_ = session.WriteCommand("b")
//	first, _ := session.ReadReply()  // reply to "a"
//	second, _ := session.ReadReply() // reply to "b"
//
// # Timeouts
//
// Operations use the session default (10s, configurable with
// WithDefaultTimeout) unless a per-call budget is given:
//
//	reply, err := session.ReadReplyTimeout(500 * time.Millisecond)
//	if err != nil {
//	    var rte *lineprobe.ReadTimeoutError
//	    if errors.As(err, &rte) {
//	        // no complete line within the budget
//	    }
//	}
//
// The budget is a soft floor rather than a hard ceiling: a reply that lands
// during the final wait is still returned, and the timeout error never fires
// before the budget has fully elapsed. Cancellation is purely timeout-driven;
// there is no context plumbing on the I/O paths.
//
// # Probe Discovery
//
// The probe binary is located from the WithProbe option, the LINEPROBE_BIN
// environment variable, or the default relative path ./probe, in that order.
// Spawn returns ProbeNotFoundError naming the searched locations when
// nothing is found.
//
// # Logging
//
// For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	session, err := lineprobe.Spawn(
//	    lineprobe.WithProbe("./probe"),
//	    lineprobe.WithLogger(logger),
//	)
//
// Each session carries a ULID that is attached to every record it logs.
package lineprobe
