package reading

// Phase is the single tagged state of a reading session. Exactly one
// phase is active at a time, so illegal flag combinations (paused while
// feedback is showing, answering before a story is loaded) cannot be
// represented.
type Phase int

const (
	// PhaseIdle is the only phase before a story is loaded.
	PhaseIdle Phase = iota

	// PhaseReading shows a text segment with the auto-advance pacer running.
	PhaseReading

	// PhasePaused shows a text segment with the pacer stopped.
	PhasePaused

	// PhaseQuestion waits for an answer to the current question.
	PhaseQuestion

	// PhaseFeedback shows correctness and the explanation after an answer.
	PhaseFeedback

	// PhaseCompleted is terminal; the engine instance is not reusable.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseReading:
		return "reading"
	case PhasePaused:
		return "paused"
	case PhaseQuestion:
		return "question"
	case PhaseFeedback:
		return "feedback"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Mood is the companion fox's reaction to the latest session event.
// Purely derived, never persisted, recomputed on every read.
type Mood string

const (
	MoodHappy       Mood = "happy"       // default while reading
	MoodThinking    Mood = "thinking"    // a question timer is running
	MoodSuccess     Mood = "success"     // last answer was correct
	MoodEncouraging Mood = "encouraging" // last answer was wrong, or a rough session
	MoodCelebration Mood = "celebration" // great session accuracy
)

// Accuracy tiers for the completion mood.
const (
	celebrationAccuracy = 0.8
	successAccuracy     = 0.5
)
