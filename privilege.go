package lineprobe

import (
	"os"

	"github.com/lineprobe/lineprobe-go/internal/proc"
)

// WarnIfNotRoot prints a warning to stderr when the harness is not running
// as root. Probe binaries often need raw-socket or similar privileges, and
// an unprivileged run fails in ways that look like protocol bugs; calling
// this from TestMain names the likely cause up front. Windows is exempt.
func WarnIfNotRoot() {
	proc.CheckPrivileges(os.Stderr)
}
