package profile

import "time"

// DateLayout is the calendar-day format used for streak tracking.
const DateLayout = "2006-01-02"

// Difficulty multiplier bounds. The multiplier is the single continuous
// "how hard" scalar: it parameterizes both story generation and the
// auto-advance reading-time budget.
const (
	MinDifficultyMultiplier = 0.5
	MaxDifficultyMultiplier = 2.0
)

// ProgressionState is the full adaptive model for one reader. It is
// mutated only by applying a progression.Result; screens and commands
// treat it as a value.
type ProgressionState struct {
	Skills               SkillScores `json:"skills"`
	DifficultyMultiplier float64     `json:"difficulty_multiplier"`
	Level                Level       `json:"level"`
	LevelScore           int         `json:"level_score"`
	CurrentStreak        int         `json:"current_streak"`
	LongestStreak        int         `json:"longest_streak"`
	LastActiveDate       string      `json:"last_active_date"` // DateLayout, "" = never
	TotalStoriesRead     int         `json:"total_stories_read"`
	TotalQuestions       int         `json:"total_questions_answered"`
	CorrectAnswers       int         `json:"correct_answers"`
}

// DefaultState returns the state for a brand-new reader.
func DefaultState() ProgressionState {
	return ProgressionState{
		Skills:               DefaultSkillScores(),
		DifficultyMultiplier: 1.0,
		Level:                LevelSprout,
		LevelScore:           50,
	}
}

// ClampMultiplier bounds a difficulty multiplier to its valid range.
func ClampMultiplier(m float64) float64 {
	if m < MinDifficultyMultiplier {
		return MinDifficultyMultiplier
	}
	if m > MaxDifficultyMultiplier {
		return MaxDifficultyMultiplier
	}
	return m
}

// Normalize clamps every bounded field and restores the structural
// invariants (longest streak >= current streak, correct <= total).
// Used when loading a snapshot written by an older build.
func Normalize(s ProgressionState) ProgressionState {
	s.Skills.Comprehension = ClampScore(s.Skills.Comprehension)
	s.Skills.Vocabulary = ClampScore(s.Skills.Vocabulary)
	s.Skills.Inference = ClampScore(s.Skills.Inference)
	s.Skills.Summarization = ClampScore(s.Skills.Summarization)
	s.LevelScore = ClampScore(s.LevelScore)
	s.DifficultyMultiplier = ClampMultiplier(s.DifficultyMultiplier)
	if s.Level < LevelSprout {
		s.Level = LevelSprout
	}
	if s.Level > LevelLegend {
		s.Level = LevelLegend
	}
	if s.CurrentStreak < 0 {
		s.CurrentStreak = 0
	}
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
	if s.CorrectAnswers > s.TotalQuestions {
		s.CorrectAnswers = s.TotalQuestions
	}
	return s
}

// LastActive parses the last-active date. The zero time means "never".
func (s ProgressionState) LastActive() time.Time {
	if s.LastActiveDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s.LastActiveDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// OverallAccuracy returns lifetime answer accuracy, 0 if no questions yet.
func (s ProgressionState) OverallAccuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalQuestions)
}
