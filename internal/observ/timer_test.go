package observ

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	idx := tm.Begin("tokenize")
	tm.End(idx)
	require.NoError(t, tm.Track("parse", func() error { return nil }))

	rep := tm.Report()
	require.Len(t, rep.Phases, 2)
	require.Equal(t, "tokenize", rep.Phases[0].Name)
	require.InDelta(t, 1.0, rep.Phases[0].DurationMS, 1e-9)
	require.InDelta(t, 2.0, rep.TotalMS, 1e-9)
}

func TestTimerTrackReturnsError(t *testing.T) {
	tm := NewTimer()
	boom := errors.New("boom")
	require.ErrorIs(t, tm.Track("read", func() error { return boom }), boom)
	require.Len(t, tm.Report().Phases, 1)
}

func TestTimerMerge(t *testing.T) {
	a := NewTimer()
	a.now = fakeClock(time.Millisecond)
	a.End(a.Begin("parse"))

	b := NewTimer()
	b.now = fakeClock(2 * time.Millisecond)
	b.End(b.Begin("parse"))
	b.End(b.Begin("render"))

	a.Merge(b)
	a.Merge(nil)
	rep := a.Report()
	require.Len(t, rep.Phases, 2)
	require.Equal(t, 2, rep.Phases[0].Count)
	require.InDelta(t, 3.0, rep.Phases[0].DurationMS, 1e-9)

	var sb strings.Builder
	require.NoError(t, a.Fprint(&sb))
	require.Contains(t, sb.String(), "(x2)")
	require.Contains(t, sb.String(), "total")
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(3)
	tm.End(-1)
	require.Equal(t, Report{}, tm.Report())
}
