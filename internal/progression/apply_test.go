package progression

import (
	"testing"
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
)

func day(s string) time.Time {
	t, err := time.Parse(profile.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name        string
		lastActive  string
		current     int
		longest     int
		now         time.Time
		wantCurrent int
		wantLongest int
	}{
		{"first session ever", "", 0, 0, day("2026-03-10"), 1, 1},
		{"same day is idempotent", "2026-03-10", 4, 6, day("2026-03-10"), 4, 6},
		{"consecutive day extends", "2026-03-09", 4, 6, day("2026-03-10"), 5, 6},
		{"consecutive day sets new longest", "2026-03-09", 6, 6, day("2026-03-10"), 7, 7},
		{"gap resets", "2026-03-01", 9, 12, day("2026-03-10"), 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := profile.DefaultState()
			state.LastActiveDate = tt.lastActive
			state.CurrentStreak = tt.current
			state.LongestStreak = tt.longest

			got := UpdateStreak(state, tt.now)

			if got.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, tt.wantCurrent)
			}
			if got.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", got.LongestStreak, tt.wantLongest)
			}
			if got.LastActiveDate != tt.now.Format(profile.DateLayout) {
				t.Errorf("LastActiveDate = %q", got.LastActiveDate)
			}
		})
	}
}

func TestApplyFoldsResultAndCounters(t *testing.T) {
	state := profile.DefaultState()
	state.LevelScore = 75

	out := outcome(4, 4, profile.SkillComprehension, profile.SkillVocabulary,
		profile.SkillInference, profile.SkillSummarization)
	res := Evaluate(state, out)
	got := Apply(state, res, out, day("2026-03-10"))

	if got.Level != profile.LevelExplorer {
		t.Errorf("Level = %v, want Explorer", got.Level)
	}
	if got.LevelScore != LevelUpResetScore {
		t.Errorf("LevelScore = %d, want %d", got.LevelScore, LevelUpResetScore)
	}
	if got.Skills.Comprehension != 52 {
		t.Errorf("Comprehension = %d, want 52", got.Skills.Comprehension)
	}
	if got.TotalStoriesRead != 1 {
		t.Errorf("TotalStoriesRead = %d, want 1", got.TotalStoriesRead)
	}
	if got.TotalQuestions != 4 || got.CorrectAnswers != 4 {
		t.Errorf("counters = %d/%d, want 4/4", got.CorrectAnswers, got.TotalQuestions)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got.CurrentStreak)
	}
}

func TestApplyPreservesInvariants(t *testing.T) {
	state := profile.DefaultState()
	now := day("2026-03-10")

	// Drive many sessions of varying quality through the pipeline and
	// check the structural invariants after each.
	sessions := []SessionOutcome{
		outcome(4, 4, profile.SkillComprehension),
		outcome(0, 5),
		outcome(2, 3, profile.SkillVocabulary),
		outcome(0, 0),
		outcome(6, 6, profile.SkillInference, profile.SkillSummarization),
	}

	for i, out := range sessions {
		res := Evaluate(state, out)
		state = Apply(state, res, out, now.AddDate(0, 0, i))

		if state.LongestStreak < state.CurrentStreak {
			t.Fatalf("session %d: longest %d < current %d", i, state.LongestStreak, state.CurrentStreak)
		}
		if state.CorrectAnswers > state.TotalQuestions {
			t.Fatalf("session %d: correct %d > total %d", i, state.CorrectAnswers, state.TotalQuestions)
		}
		if state.LevelScore < 0 || state.LevelScore > 100 {
			t.Fatalf("session %d: level score %d out of bounds", i, state.LevelScore)
		}
		if m := state.DifficultyMultiplier; m < profile.MinDifficultyMultiplier || m > profile.MaxDifficultyMultiplier {
			t.Fatalf("session %d: multiplier %v out of bounds", i, m)
		}
	}
}
