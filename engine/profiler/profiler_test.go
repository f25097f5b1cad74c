package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestProfiler(clock *fakeClock, interval time.Duration) *Profiler {
	p := NewProfiler(WithUpdateInterval(interval))
	p.now = clock.now
	p.lastTime = clock.t
	return p
}

func TestTickReportsAfterInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(clock, time.Second)

	p.Record(Sample{Cameras: 2, Penetrating: 1, MinBlockedFraction: 0.25})
	clock.t = clock.t.Add(500 * time.Millisecond)
	assert.False(t, p.Tick())

	p.Record(Sample{Cameras: 2, Penetrating: 0, MinBlockedFraction: 1})
	clock.t = clock.t.Add(500 * time.Millisecond)
	require.True(t, p.Tick())

	r := p.LastReport()
	assert.InDelta(t, 2.0, r.TicksPerSecond, 1e-9)
	assert.Equal(t, 4, r.CameraUpdates)
	assert.Equal(t, 1, r.PenetratingUpdates)
	assert.Equal(t, float32(0.25), r.MinBlockedFraction)
}

func TestTickResetsInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(clock, time.Second)

	p.Record(Sample{Cameras: 1, Penetrating: 1, MinBlockedFraction: 0.1})
	clock.t = clock.t.Add(time.Second)
	require.True(t, p.Tick())

	clock.t = clock.t.Add(time.Second)
	require.True(t, p.Tick())
	r := p.LastReport()
	assert.Equal(t, 0, r.CameraUpdates)
	assert.Equal(t, float32(1), r.MinBlockedFraction)
}

func TestRecordIgnoresEmptySamples(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newTestProfiler(clock, time.Second)

	p.Record(Sample{})
	clock.t = clock.t.Add(time.Second)
	require.True(t, p.Tick())
	assert.Equal(t, float32(1), p.LastReport().MinBlockedFraction)
}

func TestWithUpdateIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(0))
	assert.Equal(t, time.Second, p.updateInterval)
}

func TestSampleMerge(t *testing.T) {
	empty := Sample{}
	a := Sample{Cameras: 1, Penetrating: 1, MinBlockedFraction: 0.4}
	b := Sample{Cameras: 2, Penetrating: 0, MinBlockedFraction: 1}

	assert.Equal(t, a, empty.Merge(a))
	assert.Equal(t, a, a.Merge(empty))
	assert.Equal(t, Sample{Cameras: 3, Penetrating: 1, MinBlockedFraction: 0.4}, a.Merge(b))
}
