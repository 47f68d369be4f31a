package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 3; i++ {
		stop := r.Track("terrain.Generate")
		time.Sleep(time.Millisecond)
		stop()
	}
	snap := r.Snapshot()
	if got := snap["terrain.Generate"]; got < 3*time.Millisecond {
		t.Errorf("total = %v, want >= 3ms", got)
	}
}

func TestResetClears(t *testing.T) {
	r := NewRecorder()
	r.Track("a")()
	r.Reset()
	if n := len(r.Snapshot()); n != 0 {
		t.Errorf("snapshot has %d entries after Reset", n)
	}
}

func TestSumWithPrefix(t *testing.T) {
	r := NewRecorder()
	r.totals["export.Encode"] = 2 * time.Millisecond
	r.totals["export.Histogram"] = 3 * time.Millisecond
	r.totals["terrain.Generate"] = 10 * time.Millisecond
	if got := r.SumWithPrefix("export."); got != 5*time.Millisecond {
		t.Errorf("SumWithPrefix = %v, want 5ms", got)
	}
}

func TestTopNOrder(t *testing.T) {
	r := NewRecorder()
	r.totals["fast"] = 1500 * time.Microsecond
	r.totals["slow"] = 42 * time.Millisecond
	r.totals["mid"] = 7 * time.Millisecond

	got := r.TopN(2)
	if got != "slow:42ms, mid:7ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if all := r.TopN(10); !strings.HasSuffix(all, "fast:1.5ms") {
		t.Errorf("TopN(10) = %q, want fast last", all)
	}
}
