package lineprobe

// WithSession manages session lifecycle with automatic cleanup.
//
// This helper spawns a probe session, executes the callback, and guarantees
// teardown when the callback returns. It is the natural shape for a test
// body: the setup/teardown pair every session needs becomes one call.
//
// If spawning fails, the callback is not invoked and the spawn error is
// returned. Otherwise the callback's error is returned; teardown itself
// never fails.
//
// Example usage:
//
//	err := lineprobe.WithSession(func(s *lineprobe.Session) error {
//	    reply, err := s.RoundTrip("ping")
//	    if err != nil {
//	        return err
//	    }
//	    if reply != "ping" {
//	        return fmt.Errorf("unexpected reply %q", reply)
//	    }
//	    return nil
//	},
//	    lineprobe.WithProbe("./probe"),
//	    lineprobe.WithDefaultTimeout(5*time.Second),
//	)
func WithSession(fn func(*Session) error, opts ...Option) error {
	session, err := Spawn(opts...)
	if err != nil {
		return err
	}

	defer func() {
		_ = session.Close()
	}()

	return fn(session)
}
