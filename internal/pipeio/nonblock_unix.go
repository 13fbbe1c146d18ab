//go:build unix

package pipeio

import (
	"os"

	"golang.org/x/sys/unix"
)

// SetNonblocking marks the descriptor non-blocking so reads and writes never
// suspend the calling thread indefinitely. The call is idempotent and leaves
// every other descriptor flag untouched.
//
// The flag is set through SyscallConn, which keeps the file registered with
// the runtime poller; the raw Fd() accessor would drop that registration and
// deadline support with it.
func SetNonblocking(f *os.File) error {
	rawConn, err := f.SyscallConn()
	if err != nil {
		return err
	}

	var setErr error

	if err := rawConn.Control(func(fd uintptr) {
		setErr = unix.SetNonblock(int(fd), true)
	}); err != nil {
		return err
	}

	return setErr
}
