// Package proc owns the probe process lifecycle: locating the binary,
// spawning it with stdin and stdout redirected to harness pipes, and
// force-terminating it at teardown.
//
// Resolution searches in the following order:
//  1. Explicit path from the session options (if provided)
//  2. The LINEPROBE_BIN environment variable
//  3. The default relative path ./probe
//
// Bare names without a path separator are resolved through the system PATH.
// Termination is deliberately tolerant: a probe that already exited is not
// an error.
package proc
