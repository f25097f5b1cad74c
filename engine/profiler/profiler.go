package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Sample is one tick's worth of camera statistics gathered from a scene.
type Sample struct {
	// Cameras is the number of cameras updated.
	Cameras int

	// Penetrating is the number of cameras pulled in toward their safe location (blocked fraction below 1).
	Penetrating int

	// MinBlockedFraction is the smallest blocked fraction seen, 1 when nothing was blocked.
	MinBlockedFraction float32
}

// Merge combines two samples taken during the same tick.
//
// Parameters:
//   - other: the sample to fold in
//
// Returns:
//   - Sample: the combined sample
func (s Sample) Merge(other Sample) Sample {
	out := Sample{
		Cameras:            s.Cameras + other.Cameras,
		Penetrating:        s.Penetrating + other.Penetrating,
		MinBlockedFraction: min(s.MinBlockedFraction, other.MinBlockedFraction),
	}
	if s.Cameras == 0 {
		out.MinBlockedFraction = other.MinBlockedFraction
	} else if other.Cameras == 0 {
		out.MinBlockedFraction = s.MinBlockedFraction
	}
	return out
}

// Report is the summary logged at the end of an update interval.
type Report struct {
	TicksPerSecond     float64
	CameraUpdates      int
	PenetratingUpdates int
	MinBlockedFraction float32
	HeapMB             float64
	GCCount            uint32
}

// Profiler tracks tick rate, camera penetration statistics and memory usage.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	mu *sync.Mutex

	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats

	cameraUpdates      int
	penetrating        int
	minBlockedFraction float32

	last Report
	now  func() time.Time
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		mu:                 &sync.Mutex{},
		updateInterval:     time.Second,
		minBlockedFraction: 1,
		now:                time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Record folds a camera sample into the current interval.
//
// Parameters:
//   - s: the sample to record
func (p *Profiler) Record(s Sample) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cameraUpdates += s.Cameras
	p.penetrating += s.Penetrating
	if s.Cameras > 0 {
		p.minBlockedFraction = min(p.minBlockedFraction, s.MinBlockedFraction)
	}
}

// Tick should be called once per engine tick.
// Logs statistics when the update interval has elapsed: tick rate, camera updates,
// how many of them were pulled in, the tightest blocked fraction and heap usage.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	p.last = Report{
		TicksPerSecond:     float64(p.tickCount) / elapsed.Seconds(),
		CameraUpdates:      p.cameraUpdates,
		PenetratingUpdates: p.penetrating,
		MinBlockedFraction: p.minBlockedFraction,
		HeapMB:             float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:            p.memStats.NumGC,
	}

	log.Printf("[Profiler] TPS: %.2f | Camera updates: %d | Penetrating: %d | Min blocked fraction: %.4f | Heap: %.2f MB | GC: %d",
		p.last.TicksPerSecond, p.last.CameraUpdates, p.last.PenetratingUpdates, p.last.MinBlockedFraction, p.last.HeapMB, p.last.GCCount)

	p.tickCount = 0
	p.cameraUpdates = 0
	p.penetrating = 0
	p.minBlockedFraction = 1
	p.lastTime = currentTime
	return true
}

// LastReport returns the most recently logged report.
//
// Returns:
//   - Report: the last report, zero before the first interval elapses
func (p *Profiler) LastReport() Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
