package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Recorder accumulates wall time per named phase of a generation run.
type Recorder struct {
	mu     sync.Mutex
	totals map[string]time.Duration
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{totals: make(map[string]time.Duration)}
}

var defaultRecorder = NewRecorder()

// Default returns the process-wide recorder used by the package-level helpers.
func Default() *Recorder { return defaultRecorder }

// Track returns a stop function that records the elapsed time under name.
// Usage: defer rec.Track("export.Encode")()
func (r *Recorder) Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		r.mu.Lock()
		r.totals[name] += d
		r.mu.Unlock()
	}
}

// Reset clears all totals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	clear(r.totals)
	r.mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func (r *Recorder) Snapshot() map[string]time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]time.Duration, len(r.totals))
	for k, v := range r.totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every total whose name starts with prefix.
func (r *Recorder) SumWithPrefix(prefix string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum time.Duration
	for k, v := range r.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n slowest phases, slowest first.
// Example: "terrain.Generate:41.2ms, export.Encode:3.1ms"
func (r *Recorder) TopN(n int) string {
	ss := r.Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	n = min(max(n, 0), len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(fmt.Sprintf("%.1f", ms), ".0") + "ms"
}

// Track records into the default recorder.
func Track(name string) func() { return defaultRecorder.Track(name) }

// Reset clears the default recorder.
func Reset() { defaultRecorder.Reset() }

// Snapshot copies the default recorder's totals.
func Snapshot() map[string]time.Duration { return defaultRecorder.Snapshot() }

// TopN formats the default recorder's slowest phases.
func TopN(n int) string { return defaultRecorder.TopN(n) }
