package reading

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestSegmentDuration(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		wpm        int
		multiplier float64
		want       time.Duration
	}{
		// 100 words at 150 wpm: 100*400*1.5 = 60000ms, clamped to ceiling.
		{"long segment hits ceiling", 300, 150, 1.0, MaxSegmentDuration},
		// 20 words at 150 wpm: 20*400*1.5 = 12000ms.
		{"typical segment", 20, 150, 1.0, 12 * time.Second},
		// Harder difficulty shortens the window: 12000 / 1.5 = 8000ms.
		{"higher multiplier shortens", 20, 150, 1.5, 8 * time.Second},
		// Easier difficulty lengthens it: 12000 / 0.5 = 24000ms.
		{"lower multiplier lengthens", 20, 150, 0.5, 24 * time.Second},
		{"tiny segment hits floor", 2, 150, 1.0, MinSegmentDuration},
		{"empty segment gets floor dwell", 0, 150, 1.0, MinSegmentDuration},
		{"zero wpm falls back to default", 0, 0, 1.0, MinSegmentDuration},
		{"zero multiplier treated as baseline", 20, 150, 0, 12 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDuration(tt.words, tt.wpm, tt.multiplier)
			if got != tt.want {
				t.Errorf("SegmentDuration(%d, %d, %v) = %v, want %v",
					tt.words, tt.wpm, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestPacerProgressAndWordIndex(t *testing.T) {
	// 20 words over an 8s window (150 wpm, multiplier 1.5).
	var p pacer
	p.Start(20, 150, 1.5, t0)

	if p.duration != 8*time.Second {
		t.Fatalf("duration = %v, want 8s", p.duration)
	}

	// Halfway through the window the highlight sits at word 10,
	// independent of how ticks were delivered.
	mid := t0.Add(4 * time.Second)
	if got := p.Progress(mid); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
	if got := p.WordIndex(mid); got != 10 {
		t.Errorf("WordIndex = %d, want 10", got)
	}

	// Past the deadline progress saturates and the index stays in range.
	late := t0.Add(20 * time.Second)
	if got := p.Progress(late); got != 1.0 {
		t.Errorf("Progress past deadline = %v, want 1.0", got)
	}
	if got := p.WordIndex(late); got != 19 {
		t.Errorf("WordIndex past deadline = %d, want 19", got)
	}
	if !p.Done(late) {
		t.Error("Done = false past the deadline")
	}
}

func TestPacerProgressMonotonic(t *testing.T) {
	var p pacer
	p.Start(30, 150, 1.0, t0)

	prev := -1.0
	// Irregular sampling times stand in for tick jitter.
	for _, ms := range []int{0, 90, 110, 450, 451, 2000, 7999, 30000} {
		f := p.Progress(t0.Add(time.Duration(ms) * time.Millisecond))
		if f < prev {
			t.Fatalf("progress decreased at %dms: %v < %v", ms, f, prev)
		}
		if f < 0 || f > 1 {
			t.Fatalf("progress out of range at %dms: %v", ms, f)
		}
		prev = f
	}
}

func TestPacerCancelIdempotent(t *testing.T) {
	var p pacer
	gen := p.Start(20, 150, 1.0, t0)

	p.Cancel()
	genAfterFirst := p.Gen()
	p.Cancel()
	p.Cancel()

	if p.Gen() != genAfterFirst {
		t.Errorf("repeated Cancel kept bumping the generation: %d -> %d", genAfterFirst, p.Gen())
	}
	if p.Running() {
		t.Error("cancelled pacer still running")
	}
	// The countdown armed at the old generation can never match again.
	if gen == p.Gen() {
		t.Error("cancelled generation still current")
	}
	if p.Done(t0.Add(time.Minute)) {
		t.Error("cancelled pacer reports Done")
	}
}

func TestPacerPauseResume(t *testing.T) {
	var p pacer
	p.Start(20, 150, 1.5, t0) // 8s window

	// Read for 2s, pause for 10s, resume: banked progress is preserved
	// and the paused span doesn't count.
	p.Pause(t0.Add(2 * time.Second))
	pausedAt := p.Progress(t0.Add(12 * time.Second))
	if pausedAt != 0.25 {
		t.Errorf("paused progress = %v, want 0.25", pausedAt)
	}
	if p.Done(t0.Add(12 * time.Second)) {
		t.Error("paused pacer must not fire")
	}

	p.Resume(t0.Add(12 * time.Second))
	if got := p.Progress(t0.Add(14 * time.Second)); got != 0.5 {
		t.Errorf("progress after resume = %v, want 0.5", got)
	}
	if !p.Done(t0.Add(18 * time.Second)) {
		t.Error("resumed pacer never finished")
	}
}

func TestPacerStaleGeneration(t *testing.T) {
	var p pacer
	gen1 := p.Start(20, 150, 1.0, t0)
	gen2 := p.Start(5, 150, 1.0, t0.Add(time.Second))

	if gen1 == gen2 {
		t.Fatal("restart did not change generation")
	}
	if p.Gen() != gen2 {
		t.Errorf("Gen = %d, want %d", p.Gen(), gen2)
	}
}
