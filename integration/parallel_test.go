//go:build integration

package integration

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	lineprobe "github.com/lineprobe/lineprobe-go"
)

// TestParallel_IndependentSessions tests that concurrent sessions, each with
// its own probe process, never see each other's traffic.
func TestParallel_IndependentSessions(t *testing.T) {
	const sessions = 4

	// Scripts are written up front; each session's probe tags replies with
	// its own index so cross-talk would be caught immediately.
	probes := make([]string, sessions)
	for i := range probes {
		probes[i] = writeProbeScript(t, fmt.Sprintf(`while read line; do echo "s%d:$line"; done`, i))
	}

	var g errgroup.Group

	for i := range sessions {
		g.Go(func() error {
			return lineprobe.WithSession(func(session *lineprobe.Session) error {
				for j := range 5 {
					command := fmt.Sprintf("probe-%d-%d", i, j)

					reply, err := session.RoundTrip(command)
					if err != nil {
						return err
					}

					if want := fmt.Sprintf("s%d:%s", i, command); reply != want {
						return fmt.Errorf("session %d: got %q, want %q", i, reply, want)
					}
				}

				return nil
			}, lineprobe.WithProbe(probes[i]))
		})
	}

	require.NoError(t, g.Wait())
}

// TestParallel_SessionChurn tests rapid spawn/close cycles under a bounded
// degree of parallelism.
func TestParallel_SessionChurn(t *testing.T) {
	probe := writeProbeScript(t, echoProbe)

	var g errgroup.Group
	g.SetLimit(2)

	for i := range 8 {
		g.Go(func() error {
			session, err := lineprobe.Spawn(lineprobe.WithProbe(probe))
			if err != nil {
				return err
			}

			reply, err := session.RoundTrip(fmt.Sprintf("churn-%d", i))
			if err != nil {
				_ = session.Close()

				return err
			}

			if want := fmt.Sprintf("churn-%d", i); reply != want {
				_ = session.Close()

				return fmt.Errorf("got %q, want %q", reply, want)
			}

			return session.Close()
		})
	}

	require.NoError(t, g.Wait())
}
