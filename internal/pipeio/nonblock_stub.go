//go:build !unix

package pipeio

import "os"

// SetNonblocking is a no-op where the fcntl interface is unavailable. Pipe
// deadlines are not supported on these platforms either; see the package
// documentation for the supported-platform note.
func SetNonblocking(*os.File) error { return nil }
