package reading

import "time"

// Pacing bounds for a single text segment. Every segment, even an empty
// one, gets at least the floor dwell time; no segment holds the reader
// longer than the ceiling.
const (
	MinSegmentDuration = 4 * time.Second
	MaxSegmentDuration = 45 * time.Second

	// ReadingSlack pads the theoretical reading-speed estimate so the
	// reader isn't rushed by their own configured speed.
	ReadingSlack = 1.5

	// DefaultReadingSpeedWPM is used when settings carry a degenerate
	// words-per-minute value.
	DefaultReadingSpeedWPM = 130

	// TickInterval is the sampling resolution for pacer progress and
	// word highlighting. Progress itself is computed from elapsed time,
	// not tick counts, so delayed ticks never skew it.
	TickInterval = 100 * time.Millisecond
)

// SegmentDuration computes the auto-advance budget for a text segment.
// A higher difficulty multiplier means a shorter window: advanced readers
// get less hand-holding time.
func SegmentDuration(wordCount, readingSpeedWPM int, multiplier float64) time.Duration {
	if readingSpeedWPM <= 0 {
		readingSpeedWPM = DefaultReadingSpeedWPM
	}
	if multiplier <= 0 {
		multiplier = 1.0
	}

	perWordMs := 60000.0 / float64(readingSpeedWPM)
	ms := float64(wordCount) * perWordMs * (1.0 / multiplier) * ReadingSlack

	d := time.Duration(ms) * time.Millisecond
	if d < MinSegmentDuration {
		return MinSegmentDuration
	}
	if d > MaxSegmentDuration {
		return MaxSegmentDuration
	}
	return d
}

// pacer drives the cancellable auto-advance countdown for one text
// segment. Every Start and Cancel bumps the generation counter; a tick
// carrying a stale generation is ignored, so a countdown that was
// cancelled (pause, retreat, manual advance, item change) can never fire
// a stale auto-advance against a since-changed session.
type pacer struct {
	gen         int
	active      bool
	paused      bool
	startedAt   time.Time
	accumulated time.Duration
	duration    time.Duration
	wordCount   int
}

// Start arms the countdown for a segment and returns the new generation.
func (p *pacer) Start(wordCount, readingSpeedWPM int, multiplier float64, now time.Time) int {
	p.gen++
	p.active = true
	p.paused = false
	p.startedAt = now
	p.accumulated = 0
	p.duration = SegmentDuration(wordCount, readingSpeedWPM, multiplier)
	p.wordCount = wordCount
	return p.gen
}

// Cancel stops the countdown. Idempotent: cancelling twice, or cancelling
// an already-finished countdown, is harmless.
func (p *pacer) Cancel() {
	if !p.active {
		return
	}
	p.gen++
	p.active = false
	p.paused = false
}

// Pause freezes progress, banking the elapsed time.
func (p *pacer) Pause(now time.Time) {
	if !p.active || p.paused {
		return
	}
	p.accumulated += now.Sub(p.startedAt)
	p.paused = true
	p.gen++ // outstanding ticks for the running countdown go stale
}

// Resume continues a paused countdown from where it left off and returns
// the new generation.
func (p *pacer) Resume(now time.Time) int {
	if !p.active || !p.paused {
		return p.gen
	}
	p.paused = false
	p.startedAt = now
	p.gen++
	return p.gen
}

// elapsed returns time spent on the segment, excluding paused spans.
func (p *pacer) elapsed(now time.Time) time.Duration {
	if p.paused {
		return p.accumulated
	}
	return p.accumulated + now.Sub(p.startedAt)
}

// Progress returns the fraction of the reading budget consumed, in [0,1].
// Computed from elapsed/duration so it stays correct under tick jitter.
func (p *pacer) Progress(now time.Time) float64 {
	if !p.active || p.duration <= 0 {
		return 0
	}
	f := float64(p.elapsed(now)) / float64(p.duration)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// WordIndex returns the highlight position for playback-style word sync.
func (p *pacer) WordIndex(now time.Time) int {
	idx := int(p.Progress(now) * float64(p.wordCount))
	if idx >= p.wordCount && p.wordCount > 0 {
		idx = p.wordCount - 1
	}
	return idx
}

// Done reports whether the reading budget is fully consumed.
func (p *pacer) Done(now time.Time) bool {
	return p.active && !p.paused && p.elapsed(now) >= p.duration
}

// Gen returns the current generation for tick validation.
func (p *pacer) Gen() int { return p.gen }

// Running reports whether a countdown is live (active and not paused).
func (p *pacer) Running() bool { return p.active && !p.paused }
