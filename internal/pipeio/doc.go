// Package pipeio implements the non-blocking, timeout-bounded line transport
// between the harness and a probe subprocess.
//
// A Conn owns the parent ends of the probe's stdin and stdout pipes plus an
// accumulation buffer for reply bytes. WriteLine pushes one command line into
// the child's input, tolerating partial writes and backpressure; ReadLine
// pulls bytes from the child's output until a full line is available. Both
// retry in a loop bounded by a caller-supplied budget and never block
// indefinitely: every attempt is armed with a deadline derived from the
// remaining budget, so a stalled child or a full pipe becomes a timeout
// error instead of a hang.
//
// # Timeout semantics
//
// The budget is a soft floor, not a hard ceiling. Each iteration computes the
// elapsed time before waiting, makes one I/O attempt, checks for completion
// (all bytes written, or a delimiter in the buffer) and only then compares
// that stale elapsed value against the budget. A line that became available
// during the final wait is still returned, and either loop may overrun the
// nominal deadline by one retry interval.
//
// The engine needs pipes registered with the runtime poller (anything from
// os.Pipe qualifies) and is supported on unix-like platforms.
package pipeio
