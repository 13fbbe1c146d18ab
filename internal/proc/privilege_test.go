package proc

import (
	"bytes"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCheckPrivileges tests the warning in whichever privilege state the
// test process happens to run.
func TestCheckPrivileges(t *testing.T) {
	var buf bytes.Buffer

	CheckPrivileges(&buf)

	if runtime.GOOS == "windows" || os.Getuid() <= 0 {
		require.Empty(t, buf.String())
	} else {
		require.Equal(t, "Warning: Many tests require running as root\n", buf.String())
	}
}
