package reading

import (
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/story"
)

// AnswerRecord captures one submitted answer. Records are append-only,
// immutable once appended, and ordered by item presentation.
type AnswerRecord struct {
	QuestionID   string
	ChosenOption int
	Correct      bool
	Skill        profile.SkillTag
	TimeSpent    time.Duration
}

// Feedback carries what the reader sees after answering.
type Feedback struct {
	Correct       bool
	CorrectOption int
	Explanation   string
}

// Outcome is the final statistics batch of a completed session — the
// exact input handed to the progression calculator.
type Outcome struct {
	StoryID            string
	SessionID          string
	QuestionsAttempted int
	QuestionsCorrect   int
	ReadingTime        time.Duration
	Answers            []AnswerRecord
}

// Accuracy returns session accuracy, 0 for a question-free session.
func (o *Outcome) Accuracy() float64 {
	if o.QuestionsAttempted == 0 {
		return 0
	}
	return float64(o.QuestionsCorrect) / float64(o.QuestionsAttempted)
}

// SkillCorrect reports, per skill, whether at least one question of that
// skill was answered correctly.
func (o *Outcome) SkillCorrect() map[profile.SkillTag]bool {
	m := make(map[profile.SkillTag]bool)
	for _, a := range o.Answers {
		if a.Correct {
			m[a.Skill] = true
		}
	}
	return m
}

// Engine is the state machine for one reading pass over a story. All
// mutation happens through its methods on a single logical thread of
// control; methods that touch timing take an explicit now so behavior is
// deterministic under test. Invalid transitions are no-ops — UI event
// races must never corrupt the session.
type Engine struct {
	sessionID string
	story     *story.Story

	phase Phase
	index int

	answers  []AnswerRecord
	answered map[string]bool
	correct  int

	startedAt         time.Time
	questionStartedAt time.Time
	lastFeedback      *Feedback

	pacer           pacer
	readingSpeedWPM int
	multiplier      float64

	outcome *Outcome
}

// NewEngine creates an idle engine parameterized by the reader's speed
// and current difficulty multiplier.
func NewEngine(sessionID string, readingSpeedWPM int, multiplier float64) *Engine {
	return &Engine{
		sessionID:       sessionID,
		phase:           PhaseIdle,
		answered:        make(map[string]bool),
		readingSpeedWPM: readingSpeedWPM,
		multiplier:      multiplier,
	}
}

// SessionID returns the session identifier.
func (e *Engine) SessionID() string { return e.sessionID }

// Phase returns the current session phase.
func (e *Engine) Phase() Phase { return e.phase }

// Story returns the loaded story, nil while idle.
func (e *Engine) Story() *story.Story { return e.story }

// Index returns the current content position.
func (e *Engine) Index() int { return e.index }

// Score returns the running correct/attempted tally, updated at each
// answer rather than deferred to session end.
func (e *Engine) Score() (correct, attempted int) {
	return e.correct, len(e.answers)
}

// Answers returns the answer records in presentation order.
func (e *Engine) Answers() []AnswerRecord { return e.answers }

// LastFeedback returns the feedback for the most recent answer, nil
// before any question was answered.
func (e *Engine) LastFeedback() *Feedback { return e.lastFeedback }

// CurrentItem returns the content item at the current index, nil when
// idle or completed.
func (e *Engine) CurrentItem() story.ContentItem {
	if e.story == nil || e.index < 0 || e.index >= len(e.story.Content) {
		return nil
	}
	return e.story.Content[e.index]
}

// Start loads a story and begins reading at the first item. Valid only
// from the idle phase; a start on a live engine is ignored (the caller
// treats a second session as abandon-and-restart with a fresh engine).
func (e *Engine) Start(st *story.Story, now time.Time) bool {
	if e.phase != PhaseIdle || st == nil || len(st.Content) == 0 {
		return false
	}
	e.story = st
	e.index = 0
	e.answers = nil
	e.correct = 0
	e.startedAt = now
	e.enterItem(now)
	return true
}

// Advance moves to the next item. Valid while reading (manual skip,
// cancelling the pacer) or paused; on the last item it completes the
// session instead. Question and feedback phases ignore it — questions
// are left via SubmitAnswer/DismissFeedback — except for an already
// answered question reached by retreating, which behaves like a text
// segment without a pacer.
func (e *Engine) Advance(now time.Time) {
	switch e.phase {
	case PhaseReading, PhasePaused:
		e.pacer.Cancel()
		e.moveForward(now)
	case PhaseQuestion:
		if q, ok := e.CurrentItem().(story.QuestionItem); ok && e.answered[q.ID] {
			e.moveForward(now)
		}
	}
}

func (e *Engine) moveForward(now time.Time) {
	if e.index >= len(e.story.Content)-1 {
		e.Complete(now)
		return
	}
	e.index++
	e.enterItem(now)
}

// Retreat steps back one item for re-reading. Valid whenever there is a
// previous item and no feedback is showing. Going back always pauses:
// the pacer must not race ahead while the reader re-reads.
func (e *Engine) Retreat(now time.Time) {
	switch e.phase {
	case PhaseReading, PhasePaused, PhaseQuestion:
		if e.index == 0 {
			return
		}
		e.pacer.Cancel()
		e.index--
		e.phase = PhasePaused
	}
}

// TogglePause flips the auto-advance pause state. Valid any time except
// feedback (an answer cannot be un-submitted); on a question there is
// nothing to pause, so it is a no-op.
func (e *Engine) TogglePause(now time.Time) {
	switch e.phase {
	case PhaseReading:
		e.pacer.Pause(now)
		e.phase = PhasePaused
	case PhasePaused:
		if item, ok := e.CurrentItem().(story.TextSegment); ok {
			if e.pacer.active {
				e.pacer.Resume(now)
			} else {
				// Reached by retreat: restart the budget for the segment.
				e.pacer.Start(item.WordCount(), e.readingSpeedWPM, e.multiplier, now)
			}
			e.phase = PhaseReading
		}
	}
}

// SubmitAnswer records the reader's choice for the current question and
// enters feedback. Only the first submission per question counts;
// duplicates (UI double-fires) are ignored. Returns the feedback and
// whether the submission was accepted.
func (e *Engine) SubmitAnswer(optionIndex int, now time.Time) (*Feedback, bool) {
	if e.phase != PhaseQuestion {
		return nil, false
	}
	q, ok := e.CurrentItem().(story.QuestionItem)
	if !ok || e.answered[q.ID] {
		return nil, false
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return nil, false
	}

	correct := optionIndex == q.CorrectOption
	record := AnswerRecord{
		QuestionID:   q.ID,
		ChosenOption: optionIndex,
		Correct:      correct,
		Skill:        q.Skill,
		TimeSpent:    now.Sub(e.questionStartedAt),
	}
	e.answers = append(e.answers, record)
	e.answered[q.ID] = true
	if correct {
		e.correct++
	}

	e.lastFeedback = &Feedback{
		Correct:       correct,
		CorrectOption: q.CorrectOption,
		Explanation:   q.Explanation,
	}
	e.phase = PhaseFeedback
	return e.lastFeedback, true
}

// DismissFeedback leaves the feedback overlay and moves on.
func (e *Engine) DismissFeedback(now time.Time) {
	if e.phase != PhaseFeedback {
		return
	}
	e.moveForward(now)
}

// Tick drives the auto-advance countdown. gen must be the generation
// returned by PacerGen when the tick was scheduled; a stale generation
// means the countdown was cancelled or replaced since, and the tick is
// dropped. Returns true while the caller should keep ticking.
func (e *Engine) Tick(gen int, now time.Time) bool {
	if e.phase != PhaseReading || gen != e.pacer.Gen() {
		return false
	}
	if e.pacer.Done(now) {
		e.pacer.Cancel()
		e.moveForward(now)
		return e.phase == PhaseReading
	}
	return true
}

// PacerGen returns the current countdown generation for tick scheduling.
func (e *Engine) PacerGen() int { return e.pacer.Gen() }

// PacerRunning reports whether an auto-advance countdown is live.
func (e *Engine) PacerRunning() bool { return e.phase == PhaseReading && e.pacer.Running() }

// Progress returns the fractional reading progress of the current text
// segment, for the progress bar and word highlighting.
func (e *Engine) Progress(now time.Time) float64 { return e.pacer.Progress(now) }

// WordIndex returns the current highlight position within the segment.
func (e *Engine) WordIndex(now time.Time) int { return e.pacer.WordIndex(now) }

// Complete finishes the session, either because the content sequence is
// exhausted or as an explicit early abandon. Idempotent: the first call
// computes the outcome, later calls return it unchanged.
func (e *Engine) Complete(now time.Time) *Outcome {
	if e.phase == PhaseIdle {
		return nil
	}
	if e.outcome != nil {
		return e.outcome
	}

	e.pacer.Cancel()
	e.phase = PhaseCompleted
	e.outcome = &Outcome{
		StoryID:            e.story.ID,
		SessionID:          e.sessionID,
		QuestionsAttempted: len(e.answers),
		QuestionsCorrect:   e.correct,
		ReadingTime:        now.Sub(e.startedAt),
		Answers:            e.answers,
	}
	return e.outcome
}

// Outcome returns the completed session's statistics, nil before completion.
func (e *Engine) Outcome() *Outcome { return e.outcome }

// Mood derives the companion's reaction from the latest event. Always
// recomputed so it can never go stale.
func (e *Engine) Mood() Mood {
	switch e.phase {
	case PhaseQuestion:
		return MoodThinking
	case PhaseFeedback:
		if e.lastFeedback != nil && e.lastFeedback.Correct {
			return MoodSuccess
		}
		return MoodEncouraging
	case PhaseCompleted:
		acc := e.outcome.Accuracy()
		switch {
		case acc >= celebrationAccuracy:
			return MoodCelebration
		case acc >= successAccuracy:
			return MoodSuccess
		default:
			return MoodEncouraging
		}
	}
	return MoodHappy
}

// enterItem arms the right machinery for the item at the current index:
// a pacer for text, the answer timer for an unanswered question, and a
// pacer-free dwell for an already answered question.
func (e *Engine) enterItem(now time.Time) {
	switch item := e.CurrentItem().(type) {
	case story.TextSegment:
		e.phase = PhaseReading
		e.pacer.Start(item.WordCount(), e.readingSpeedWPM, e.multiplier, now)
	case story.QuestionItem:
		if e.answered[item.ID] {
			e.phase = PhaseQuestion
			return
		}
		e.phase = PhaseQuestion
		e.questionStartedAt = now
	}
}
