package progression

import (
	"testing"

	"github.com/mkrishnan/storyfox/internal/profile"
)

func outcome(correct, total int, skills ...profile.SkillTag) SessionOutcome {
	sc := make(map[profile.SkillTag]bool)
	for _, s := range skills {
		sc[s] = true
	}
	return SessionOutcome{
		QuestionsAttempted: total,
		QuestionsCorrect:   correct,
		SkillCorrect:       sc,
	}
}

func TestEvaluatePerfectSessionLevelsUp(t *testing.T) {
	// 4/4 correct at level score 75: delta = 4*5 + 10 = 30, candidate 100,
	// crosses the 80 threshold, resets to the mid-level score.
	state := profile.DefaultState()
	state.LevelScore = 75
	state.DifficultyMultiplier = 1.0

	res := Evaluate(state, outcome(4, 4))

	if res.LevelScoreDelta != 30 {
		t.Errorf("LevelScoreDelta = %d, want 30", res.LevelScoreDelta)
	}
	if res.Transition.Kind != TransitionUp {
		t.Fatalf("Transition.Kind = %v, want up", res.Transition.Kind)
	}
	if res.Transition.To != profile.LevelExplorer {
		t.Errorf("Transition.To = %v, want Explorer", res.Transition.To)
	}
	if res.NewLevelScore != LevelUpResetScore {
		t.Errorf("NewLevelScore = %d, want %d (reset, not carry-over)", res.NewLevelScore, LevelUpResetScore)
	}
	if res.NewMultiplier != 1.05 {
		t.Errorf("NewMultiplier = %v, want 1.05", res.NewMultiplier)
	}
}

func TestEvaluateLowAccuracyNoDownCrossing(t *testing.T) {
	// 1/5 correct at level score 30: delta = 5 - 8 = -3, candidate 27.
	// 27 stays above the down floor, so the level is unchanged, but the
	// difficulty multiplier drops a step (accuracy 0.2 <= 0.40).
	state := profile.DefaultState()
	state.LevelScore = 30
	state.DifficultyMultiplier = 1.0

	res := Evaluate(state, outcome(1, 5))

	if res.LevelScoreDelta != -3 {
		t.Errorf("LevelScoreDelta = %d, want -3", res.LevelScoreDelta)
	}
	if res.Transition.Kind != TransitionNone {
		t.Errorf("Transition.Kind = %v, want none", res.Transition.Kind)
	}
	if res.NewLevelScore != 27 {
		t.Errorf("NewLevelScore = %d, want 27", res.NewLevelScore)
	}
	if res.NewMultiplier != 0.95 {
		t.Errorf("NewMultiplier = %v, want 0.95", res.NewMultiplier)
	}
}

func TestEvaluateLevelDownRequiresCrossing(t *testing.T) {
	tests := []struct {
		name       string
		levelScore int
		correct    int
		total      int
		wantKind   TransitionKind
		wantScore  int
	}{
		{"downward crossing demotes", 25, 0, 5, TransitionDown, LevelDownResetScore},
		{"already low does not demote", 10, 0, 5, TransitionNone, 0},
		{"positive session near the floor does not demote", 22, 1, 2, TransitionNone, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := profile.DefaultState()
			state.Level = profile.LevelExplorer
			state.LevelScore = tt.levelScore

			res := Evaluate(state, outcome(tt.correct, tt.total))

			if res.Transition.Kind != tt.wantKind {
				t.Errorf("Transition.Kind = %v, want %v", res.Transition.Kind, tt.wantKind)
			}
			if res.NewLevelScore != tt.wantScore {
				t.Errorf("NewLevelScore = %d, want %d", res.NewLevelScore, tt.wantScore)
			}
		})
	}
}

func TestEvaluateNoDemotionBelowFirstLevel(t *testing.T) {
	state := profile.DefaultState()
	state.Level = profile.LevelSprout
	state.LevelScore = 25

	res := Evaluate(state, outcome(0, 5))

	if res.Transition.Kind != TransitionNone {
		t.Errorf("Transition.Kind = %v, want none at first level", res.Transition.Kind)
	}
}

func TestEvaluateTerminalLevelNeedsFullBar(t *testing.T) {
	state := profile.DefaultState()
	state.Level = profile.LevelLegend
	state.LevelScore = 90

	res := Evaluate(state, outcome(4, 4))

	if res.Transition.Kind != TransitionNone {
		t.Errorf("terminal level advanced: %v", res.Transition)
	}
	if res.NewLevelScore != 100 {
		t.Errorf("NewLevelScore = %d, want 100 (clamped)", res.NewLevelScore)
	}
}

func TestEvaluateStreakBonusCapped(t *testing.T) {
	base := profile.DefaultState()
	base.LevelScore = 10

	at10 := base
	at10.CurrentStreak = 10
	at50 := base
	at50.CurrentStreak = 50

	res10 := Evaluate(at10, outcome(2, 4))
	res50 := Evaluate(at50, outcome(2, 4))

	if res10.LevelScoreDelta != res50.LevelScoreDelta {
		t.Errorf("streak 50 delta %d != streak 10 delta %d", res50.LevelScoreDelta, res10.LevelScoreDelta)
	}
	// 2*5 - 2*2 + 10*3 = 36
	if res10.LevelScoreDelta != 36 {
		t.Errorf("LevelScoreDelta = %d, want 36", res10.LevelScoreDelta)
	}
}

func TestEvaluateNoQuestionsIsNeutral(t *testing.T) {
	state := profile.DefaultState()
	state.LevelScore = 60
	state.CurrentStreak = 8
	state.DifficultyMultiplier = 1.3

	res := Evaluate(state, outcome(0, 0))

	if res.LevelScoreDelta != 0 {
		t.Errorf("LevelScoreDelta = %d, want 0", res.LevelScoreDelta)
	}
	if res.NewLevelScore != 60 {
		t.Errorf("NewLevelScore = %d, want 60", res.NewLevelScore)
	}
	if res.NewMultiplier != 1.3 {
		t.Errorf("NewMultiplier = %v, want 1.3", res.NewMultiplier)
	}
	if res.Transition.Kind != TransitionNone {
		t.Errorf("Transition.Kind = %v, want none", res.Transition.Kind)
	}
}

func TestEvaluateAccuracyMonotonic(t *testing.T) {
	state := profile.DefaultState()
	state.LevelScore = 40

	prev := -1 << 30
	for correct := 0; correct <= 6; correct++ {
		res := Evaluate(state, outcome(correct, 6))
		if res.LevelScoreDelta < prev {
			t.Fatalf("delta decreased at correct=%d: %d < %d", correct, res.LevelScoreDelta, prev)
		}
		prev = res.LevelScoreDelta
	}
}

func TestEvaluateMultiplierStaysBounded(t *testing.T) {
	state := profile.DefaultState()
	state.DifficultyMultiplier = profile.MaxDifficultyMultiplier

	res := Evaluate(state, outcome(4, 4))
	if res.NewMultiplier > profile.MaxDifficultyMultiplier {
		t.Errorf("multiplier above cap: %v", res.NewMultiplier)
	}

	state.DifficultyMultiplier = profile.MinDifficultyMultiplier
	res = Evaluate(state, outcome(0, 4))
	if res.NewMultiplier < profile.MinDifficultyMultiplier {
		t.Errorf("multiplier below floor: %v", res.NewMultiplier)
	}
}

func TestEvaluateMidBandLeavesMultiplier(t *testing.T) {
	state := profile.DefaultState()
	state.DifficultyMultiplier = 1.2

	// 3/5 = 0.6 sits inside the hysteresis band.
	res := Evaluate(state, outcome(3, 5))
	if res.NewMultiplier != 1.2 {
		t.Errorf("NewMultiplier = %v, want unchanged 1.2", res.NewMultiplier)
	}
}

func TestEvaluateSkillDeltas(t *testing.T) {
	state := profile.DefaultState()

	res := Evaluate(state, outcome(2, 4, profile.SkillVocabulary, profile.SkillInference))

	if d := res.SkillDeltas[profile.SkillVocabulary]; d != SkillGain {
		t.Errorf("vocabulary delta = %d, want %d", d, SkillGain)
	}
	if d := res.SkillDeltas[profile.SkillInference]; d != SkillGain {
		t.Errorf("inference delta = %d, want %d", d, SkillGain)
	}
	// Exercised-but-missed and not-exercised skills both decay.
	if d := res.SkillDeltas[profile.SkillComprehension]; d != -SkillDecay {
		t.Errorf("comprehension delta = %d, want %d", d, -SkillDecay)
	}
	if d := res.SkillDeltas[profile.SkillSummarization]; d != -SkillDecay {
		t.Errorf("summarization delta = %d, want %d", d, -SkillDecay)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	state := profile.DefaultState()
	state.LevelScore = 42
	state.CurrentStreak = 3
	out := outcome(3, 5, profile.SkillComprehension)

	a := Evaluate(state, out)
	b := Evaluate(state, out)

	if a.LevelScoreDelta != b.LevelScoreDelta || a.NewLevelScore != b.NewLevelScore ||
		a.NewMultiplier != b.NewMultiplier || a.Transition != b.Transition {
		t.Errorf("Evaluate not deterministic: %+v vs %+v", a, b)
	}
}
