package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate and memory statistics for the camera update
// loop. Outputs stats to the log at a configurable interval; a per-frame
// camera core should allocate next to nothing in steady state, so a nonzero
// allocation rate here usually means a follow controller is misbehaving.
type Profiler struct {
	tickCount      int
	worstTick      time.Duration
	lastTickStart  time.Time
	lastReport     time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Report interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastReport:     time.Now(),
		updateInterval: time.Second,
	}
}

// BeginTick marks the start of one camera update.
func (p *Profiler) BeginTick() {
	p.lastTickStart = time.Now()
}

// EndTick marks the end of one camera update and logs statistics when the
// report interval has elapsed. Statistics include tick rate, worst update
// time in the interval, heap usage, and allocation rate.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) EndTick() bool {
	p.tickCount++
	if d := time.Since(p.lastTickStart); d > p.worstTick {
		p.worstTick = d
	}

	now := time.Now()
	elapsed := now.Sub(p.lastReport)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateKB := float64(allocDelta) / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] Ticks/s: %.2f | Worst update: %s | Heap: %.2f MB | Alloc Rate: %.2f KB/s",
		tps, p.worstTick, allocMB, allocRateKB)

	p.tickCount = 0
	p.worstTick = 0
	p.lastReport = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
