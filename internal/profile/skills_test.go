package profile

import "testing"

func TestApplyDeltasClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"normal gain", 50, 2, 52},
		{"normal loss", 50, -1, 49},
		{"clamp high", 99, 10, 100},
		{"clamp low", 1, -10, 0},
		{"huge delta clamps", 50, 1000, 100},
		{"huge negative clamps", 50, -1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SkillScores{Vocabulary: tt.start}
			got := ApplyDeltas(s, SkillDeltas{SkillVocabulary: tt.delta})
			if got.Vocabulary != tt.want {
				t.Errorf("Vocabulary = %d, want %d", got.Vocabulary, tt.want)
			}
		})
	}
}

func TestApplyDeltasLeavesUnspecifiedFields(t *testing.T) {
	s := DefaultSkillScores()
	got := ApplyDeltas(s, SkillDeltas{SkillInference: 5})

	if got.Inference != 55 {
		t.Errorf("Inference = %d, want 55", got.Inference)
	}
	if got.Comprehension != 50 || got.Vocabulary != 50 || got.Summarization != 50 {
		t.Errorf("unspecified fields changed: %+v", got)
	}
}

func TestApplyDeltasIgnoresUnknownTags(t *testing.T) {
	s := DefaultSkillScores()
	got := ApplyDeltas(s, SkillDeltas{SkillTag("spelling"): 40})
	if got != s {
		t.Errorf("unknown tag mutated scores: %+v", got)
	}
}

func TestApplyDeltasStaysBoundedOverSequences(t *testing.T) {
	s := DefaultSkillScores()
	deltas := []int{30, 30, 30, -200, 7, 150, -3}
	for _, d := range deltas {
		s = ApplyDeltas(s, SkillDeltas{
			SkillComprehension: d,
			SkillVocabulary:    -d,
			SkillInference:     d * 2,
			SkillSummarization: -d * 2,
		})
		for _, tag := range AllSkillTags() {
			v := s.Get(tag)
			if v < 0 || v > 100 {
				t.Fatalf("skill %s out of bounds: %d", tag, v)
			}
		}
	}
}

func TestNormalizeRestoresInvariants(t *testing.T) {
	s := ProgressionState{
		Skills:               SkillScores{Comprehension: 140, Vocabulary: -3},
		DifficultyMultiplier: 9.0,
		Level:                Level(42),
		LevelScore:           130,
		CurrentStreak:        7,
		LongestStreak:        2,
		TotalQuestions:       5,
		CorrectAnswers:       9,
	}
	got := Normalize(s)

	if got.Skills.Comprehension != 100 || got.Skills.Vocabulary != 0 {
		t.Errorf("skills not clamped: %+v", got.Skills)
	}
	if got.DifficultyMultiplier != MaxDifficultyMultiplier {
		t.Errorf("multiplier = %v, want %v", got.DifficultyMultiplier, MaxDifficultyMultiplier)
	}
	if got.Level != LevelLegend {
		t.Errorf("level = %v, want terminal", got.Level)
	}
	if got.LevelScore != 100 {
		t.Errorf("level score = %d, want 100", got.LevelScore)
	}
	if got.LongestStreak < got.CurrentStreak {
		t.Errorf("longest streak %d < current %d", got.LongestStreak, got.CurrentStreak)
	}
	if got.CorrectAnswers > got.TotalQuestions {
		t.Errorf("correct %d > total %d", got.CorrectAnswers, got.TotalQuestions)
	}
}

func TestLevelLadder(t *testing.T) {
	if LevelSprout.AdvanceThreshold() != 80 {
		t.Errorf("Sprout threshold = %d, want 80", LevelSprout.AdvanceThreshold())
	}
	if LevelLegend.AdvanceThreshold() != 100 {
		t.Errorf("Legend threshold = %d, want 100", LevelLegend.AdvanceThreshold())
	}
	if LevelLegend.Next() != LevelLegend {
		t.Error("terminal level must have no successor")
	}
	if LevelSprout.Prev() != LevelSprout {
		t.Error("first level must have no predecessor")
	}
}
