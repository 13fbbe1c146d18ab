package proc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/lineprobe/lineprobe-go/internal/errors"
)

// Child is a spawned probe process plus the parent ends of its pipes.
//
// Stdin is the write end of the pipe feeding the probe's standard input;
// Stdout is the read end of the pipe carrying its standard output. Only
// those two streams are redirected.
type Child struct {
	log    *slog.Logger
	Cmd    *exec.Cmd
	Stdin  *os.File
	Stdout *os.File
}

// Spawn starts the probe with its stdin and stdout redirected to
// harness-controlled pipes. The probe's stderr goes to the given writer, or
// passes through to the harness process's stderr when nil.
//
// The child-side pipe ends are closed in the parent once the process is
// running; holding them open would keep the read side alive past the
// child's exit.
func Spawn(log *slog.Logger, path string, args []string, stderr io.Writer) (*Child, error) {
	// The probe reads commands from childRead; the harness writes them to
	// parentWrite.
	childRead, parentWrite, err := os.Pipe()
	if err != nil {
		return nil, &errors.SpawnError{Path: path, Err: fmt.Errorf("stdin pipe: %w", err)}
	}

	// The probe writes replies to childWrite; the harness reads them from
	// parentRead.
	parentRead, childWrite, err := os.Pipe()
	if err != nil {
		_ = childRead.Close()
		_ = parentWrite.Close()

		return nil, &errors.SpawnError{Path: path, Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	//nolint:gosec // G204: launching a caller-chosen probe binary is the point of the harness
	cmd := exec.Command(path, args...)
	cmd.Stdin = childRead
	cmd.Stdout = childWrite
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		log.Error("failed to start probe process", "path", path, "error", err)

		_ = childRead.Close()
		_ = parentWrite.Close()
		_ = parentRead.Close()
		_ = childWrite.Close()

		return nil, &errors.SpawnError{Path: path, Err: err}
	}

	_ = childRead.Close()
	_ = childWrite.Close()

	log.Info("probe process started", "path", path, "pid", cmd.Process.Pid)

	return &Child{
		log:    log.With("component", "proc"),
		Cmd:    cmd,
		Stdin:  parentWrite,
		Stdout: parentRead,
	}, nil
}

// Pid returns the probe process's ID.
func (c *Child) Pid() int {
	return c.Cmd.Process.Pid
}

// Terminate force-kills the probe and reaps it. Every error along the way
// (process already exited, already reaped) is discarded; Terminate never
// fails.
func (c *Child) Terminate() {
	if c.Cmd == nil || c.Cmd.Process == nil {
		return
	}

	c.log.Debug("killing probe process", "pid", c.Cmd.Process.Pid)

	if err := c.Cmd.Process.Kill(); err != nil {
		c.log.Debug("probe process kill reported an error", "error", err)
	}

	// Reap; after a kill the non-nil "signal: killed" result is expected.
	_ = c.Cmd.Wait()
}
