//go:build integration

package integration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	lineprobe "github.com/lineprobe/lineprobe-go"
)

// TestPipeline_BurstPreservesOrder tests that a burst of commands issued
// before any read produces replies in issue order, none lost, none repeated.
func TestPipeline_BurstPreservesOrder(t *testing.T) {
	probe := writeProbeScript(t, tagProbe)

	session, err := lineprobe.Spawn(lineprobe.WithProbe(probe))
	require.NoError(t, err, "Spawn should succeed")

	defer session.Close()

	const n = 20

	for i := range n {
		require.NoError(t, session.WriteCommand(fmt.Sprintf("cmd-%02d", i)))
	}

	for i := range n {
		reply, err := session.ReadReply()
		require.NoError(t, err, "reply %d should arrive", i)
		require.Equal(t, fmt.Sprintf("reply:cmd-%02d", i), reply)
	}
}

// TestPipeline_BufferedRepliesReturnImmediately tests that replies already
// sitting in the buffer come back without waiting out a readiness cycle.
func TestPipeline_BufferedRepliesReturnImmediately(t *testing.T) {
	probe := writeProbeScript(t, echoProbe)

	session, err := lineprobe.Spawn(lineprobe.WithProbe(probe))
	require.NoError(t, err, "Spawn should succeed")

	defer session.Close()

	require.NoError(t, session.WriteCommand("a"))
	require.NoError(t, session.WriteCommand("b"))
	require.NoError(t, session.WriteCommand("c"))

	first, err := session.ReadReply()
	require.NoError(t, err)
	require.Equal(t, "a", first)

	// b and c are almost certainly buffered by now; draining them must be
	// quick even with a large budget on the call.
	start := time.Now()

	for _, want := range []string{"b", "c"} {
		reply, err := session.ReadReplyTimeout(30 * time.Second)
		require.NoError(t, err)
		require.Equal(t, want, reply)
	}

	require.Less(t, time.Since(start), 5*time.Second, "buffered replies should not wait")
}

// TestPipeline_InterleavedRoundTrips tests alternating write/read exchanges
// over one long-lived probe.
func TestPipeline_InterleavedRoundTrips(t *testing.T) {
	probe := writeProbeScript(t, tagProbe)

	var transcripts []string

	err := lineprobe.WithSession(func(session *lineprobe.Session) error {
		for i := range 10 {
			reply, err := session.RoundTrip(fmt.Sprintf("seq-%d", i))
			if err != nil {
				return err
			}

			transcripts = append(transcripts, reply)
		}

		return nil
	}, lineprobe.WithProbe(probe))

	require.NoError(t, err)
	require.Len(t, transcripts, 10)

	for i, got := range transcripts {
		require.Equal(t, fmt.Sprintf("reply:seq-%d", i), got)
	}
}
