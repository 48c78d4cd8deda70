package reading

import (
	"testing"
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/story"
)

// testStory builds: text(6 words) → question → text(4 words) → question.
func testStory() *story.Story {
	s := &story.Story{
		ID:    "story-1",
		Title: "The Brave Snail",
		Content: []story.ContentItem{
			story.TextSegment{Text: "Sami the snail wanted to race."},
			story.QuestionItem{
				ID:            "q1",
				Prompt:        "What did Sami want to do?",
				Options:       []string{"Sleep", "Race", "Eat"},
				CorrectOption: 1,
				Skill:         profile.SkillComprehension,
				Explanation:   "Sami wanted to race!",
			},
			story.TextSegment{Text: "He trained every single day."},
			story.QuestionItem{
				ID:            "q2",
				Prompt:        "How do you think Sami felt?",
				Options:       []string{"Determined", "Bored"},
				CorrectOption: 0,
				Skill:         profile.SkillInference,
				Explanation:   "Training every day shows determination.",
			},
		},
	}
	s.WordCount = story.CountWords(s.Content)
	return s
}

func startedEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine("sess-1", 150, 1.0)
	if !e.Start(testStory(), t0) {
		t.Fatal("Start failed")
	}
	return e
}

func TestStartOnlyFromIdle(t *testing.T) {
	e := startedEngine(t)
	if e.Phase() != PhaseReading {
		t.Fatalf("phase = %v, want reading", e.Phase())
	}
	if e.Start(testStory(), t0) {
		t.Error("second Start on a live engine must be rejected")
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0", e.Index())
	}
}

func TestOperationsBeforeStartAreNoOps(t *testing.T) {
	e := NewEngine("sess-1", 150, 1.0)

	e.Advance(t0)
	e.Retreat(t0)
	e.TogglePause(t0)
	if _, ok := e.SubmitAnswer(0, t0); ok {
		t.Error("SubmitAnswer accepted before a story was loaded")
	}
	if out := e.Complete(t0); out != nil {
		t.Errorf("Complete before start returned %+v", out)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
}

func TestAdvanceOntoQuestionArmsTimer(t *testing.T) {
	e := startedEngine(t)

	e.Advance(t0.Add(time.Second))
	if e.Phase() != PhaseQuestion {
		t.Fatalf("phase = %v, want question", e.Phase())
	}
	if e.Mood() != MoodThinking {
		t.Errorf("mood = %v, want thinking", e.Mood())
	}

	// Answer 3 seconds later; the record carries the elapsed time.
	fb, ok := e.SubmitAnswer(1, t0.Add(4*time.Second))
	if !ok {
		t.Fatal("SubmitAnswer rejected")
	}
	if !fb.Correct {
		t.Error("expected a correct answer")
	}
	recs := e.Answers()
	if len(recs) != 1 {
		t.Fatalf("answers = %d, want 1", len(recs))
	}
	if recs[0].TimeSpent != 3*time.Second {
		t.Errorf("TimeSpent = %v, want 3s", recs[0].TimeSpent)
	}
}

func TestSubmitAnswerDuplicateIgnored(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0)

	if _, ok := e.SubmitAnswer(1, t0); !ok {
		t.Fatal("first submission rejected")
	}
	if _, ok := e.SubmitAnswer(2, t0); ok {
		t.Error("second submission accepted during feedback")
	}

	correct, attempted := e.Score()
	if correct != 1 || attempted != 1 {
		t.Errorf("score = %d/%d, want 1/1", correct, attempted)
	}
}

func TestFeedbackMoods(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0)
	e.SubmitAnswer(1, t0) // correct
	if e.Mood() != MoodSuccess {
		t.Errorf("mood after correct = %v, want success", e.Mood())
	}
	e.DismissFeedback(t0)

	e.Advance(t0) // onto q2
	e.SubmitAnswer(1, t0) // wrong
	if e.Mood() != MoodEncouraging {
		t.Errorf("mood after wrong = %v, want encouraging", e.Mood())
	}
}

func TestTogglePauseBlockedDuringFeedback(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0)
	e.SubmitAnswer(0, t0)

	e.TogglePause(t0)
	if e.Phase() != PhaseFeedback {
		t.Errorf("phase = %v, want feedback (pause must not un-submit)", e.Phase())
	}
}

func TestRetreatForcesPause(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0) // onto q1

	e.Retreat(t0)
	if e.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", e.Phase())
	}
	if e.Index() != 0 {
		t.Errorf("index = %d, want 0", e.Index())
	}
	if e.PacerRunning() {
		t.Error("pacer running after retreat")
	}

	// Retreat at the first item is a no-op.
	e.Retreat(t0)
	if e.Index() != 0 {
		t.Errorf("index = %d after retreat at 0", e.Index())
	}
}

func TestAutoAdvanceFiresViaTick(t *testing.T) {
	e := startedEngine(t)
	gen := e.PacerGen()

	// First segment: 6 words at 150 wpm → floor 4s.
	if fired := e.Tick(gen, t0.Add(time.Second)); !fired {
		t.Error("tick before the deadline should keep ticking")
	}
	e.Tick(gen, t0.Add(5*time.Second))
	if e.Phase() != PhaseQuestion {
		t.Errorf("phase = %v, want question after auto-advance", e.Phase())
	}
	if e.Index() != 1 {
		t.Errorf("index = %d, want 1", e.Index())
	}
}

func TestStaleTickNeverDoubleAdvances(t *testing.T) {
	e := startedEngine(t)
	gen := e.PacerGen()

	// Manual advance cancels the countdown; the old tick arriving late
	// (even past the original deadline) must be dropped.
	e.Advance(t0.Add(time.Second))
	idx := e.Index()
	e.Tick(gen, t0.Add(10*time.Second))
	e.Tick(gen, t0.Add(11*time.Second))

	if e.Index() != idx {
		t.Errorf("stale tick advanced the session: index %d -> %d", idx, e.Index())
	}
}

func TestPausedTickDoesNotFire(t *testing.T) {
	e := startedEngine(t)
	gen := e.PacerGen()

	e.TogglePause(t0.Add(time.Second))
	if e.Phase() != PhasePaused {
		t.Fatalf("phase = %v, want paused", e.Phase())
	}
	e.Tick(gen, t0.Add(time.Minute))
	if e.Index() != 0 {
		t.Error("tick fired while paused")
	}

	// Resume continues the countdown with a fresh generation.
	e.TogglePause(t0.Add(2 * time.Second))
	if e.Phase() != PhaseReading {
		t.Fatalf("phase = %v, want reading", e.Phase())
	}
	gen2 := e.PacerGen()
	if gen2 == gen {
		t.Error("resume reused the old generation")
	}
	e.Tick(gen2, t0.Add(10*time.Second))
	if e.Index() != 1 {
		t.Errorf("index = %d, want 1 after resumed countdown fired", e.Index())
	}
}

func TestFullSessionOutcome(t *testing.T) {
	e := startedEngine(t)

	e.Advance(t0)                                // onto q1
	e.SubmitAnswer(1, t0.Add(2*time.Second))     // correct
	e.DismissFeedback(t0.Add(3 * time.Second))   // onto text
	e.Advance(t0.Add(4 * time.Second))           // onto q2
	e.SubmitAnswer(1, t0.Add(6*time.Second))     // wrong
	e.DismissFeedback(t0.Add(7 * time.Second))   // last item → completes

	if e.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", e.Phase())
	}

	out := e.Outcome()
	if out == nil {
		t.Fatal("no outcome after completion")
	}
	if out.QuestionsAttempted != 2 || out.QuestionsCorrect != 1 {
		t.Errorf("outcome = %d/%d, want 1/2", out.QuestionsCorrect, out.QuestionsAttempted)
	}
	if out.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", out.Accuracy())
	}
	if out.ReadingTime != 7*time.Second {
		t.Errorf("reading time = %v, want 7s", out.ReadingTime)
	}

	sc := out.SkillCorrect()
	if !sc[profile.SkillComprehension] {
		t.Error("comprehension should be marked correct")
	}
	if sc[profile.SkillInference] {
		t.Error("inference should not be marked correct")
	}

	// Answers stay in presentation order.
	if out.Answers[0].QuestionID != "q1" || out.Answers[1].QuestionID != "q2" {
		t.Errorf("answer order wrong: %+v", out.Answers)
	}

	// Accuracy 0.5 lands in the success tier.
	if e.Mood() != MoodSuccess {
		t.Errorf("mood = %v, want success", e.Mood())
	}

	// Completion is idempotent and the instance is spent.
	again := e.Complete(t0.Add(time.Hour))
	if again != out {
		t.Error("Complete recomputed a finished session")
	}
	e.Advance(t0)
	if e.Phase() != PhaseCompleted {
		t.Error("completed engine accepted Advance")
	}
}

func TestEarlyAbandonCompletes(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0)
	e.SubmitAnswer(1, t0.Add(time.Second))

	out := e.Complete(t0.Add(2 * time.Second))
	if out == nil || out.QuestionsAttempted != 1 {
		t.Fatalf("abandon outcome = %+v", out)
	}
	if e.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want completed", e.Phase())
	}
}

func TestCompletionMoodTiers(t *testing.T) {
	tests := []struct {
		name    string
		answers []int // option chosen for q1 (correct=1) and q2 (correct=0)
		want    Mood
	}{
		{"all correct celebrates", []int{1, 0}, MoodCelebration},
		{"half correct succeeds", []int{1, 1}, MoodSuccess},
		{"none correct encourages", []int{0, 1}, MoodEncouraging},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := startedEngine(t)
			e.Advance(t0)
			e.SubmitAnswer(tt.answers[0], t0)
			e.DismissFeedback(t0)
			e.Advance(t0)
			e.SubmitAnswer(tt.answers[1], t0)
			e.DismissFeedback(t0)

			if e.Phase() != PhaseCompleted {
				t.Fatalf("phase = %v, want completed", e.Phase())
			}
			if e.Mood() != tt.want {
				t.Errorf("mood = %v, want %v", e.Mood(), tt.want)
			}
		})
	}
}

func TestRetreatOntoAnsweredQuestion(t *testing.T) {
	e := startedEngine(t)
	e.Advance(t0)
	e.SubmitAnswer(1, t0)
	e.DismissFeedback(t0) // onto text at index 2

	e.Retreat(t0) // back onto answered q1
	if e.Index() != 1 || e.Phase() != PhasePaused {
		t.Fatalf("index/phase = %d/%v, want 1/paused", e.Index(), e.Phase())
	}

	// Re-submitting is ignored; advancing moves on without a new record.
	if _, ok := e.SubmitAnswer(2, t0); ok {
		t.Error("answered question accepted a second submission")
	}
	e.Advance(t0)
	if e.Index() != 2 {
		t.Errorf("index = %d, want 2", e.Index())
	}
	if _, attempted := e.Score(); attempted != 1 {
		t.Errorf("attempted = %d, want 1", attempted)
	}
}
