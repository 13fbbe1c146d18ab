package proc

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// CheckPrivileges writes a warning line to w when the harness is not running
// as root. Probe binaries commonly need privileged resources such as raw
// sockets, and an unprivileged run shows up as puzzling protocol failures;
// the warning names the likely cause up front. Windows has no uid model and
// is exempt.
func CheckPrivileges(w io.Writer) {
	if runtime.GOOS == "windows" {
		return
	}

	if os.Getuid() > 0 {
		fmt.Fprint(w, "Warning: Many tests require running as root\n")
	}
}
