package progression

import (
	"time"

	"github.com/mkrishnan/storyfox/internal/profile"
)

// UpdateStreak advances the daily reading streak for a session completed
// on day now. Same calendar day: unchanged. Consecutive day: +1. First
// session ever or a gap: reset to 1. Longest streak is maintained.
func UpdateStreak(state profile.ProgressionState, now time.Time) profile.ProgressionState {
	today := now.Format(profile.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(profile.DateLayout)

	switch state.LastActiveDate {
	case today:
		// Already counted.
	case yesterday:
		state.CurrentStreak++
	default:
		state.CurrentStreak = 1
	}
	state.LastActiveDate = today
	if state.LongestStreak < state.CurrentStreak {
		state.LongestStreak = state.CurrentStreak
	}
	return state
}

// Apply folds a Result and its session outcome into the progression
// state. This is the only mutation path for ProgressionState: screens and
// commands never edit the state directly. The caller owns persistence.
func Apply(state profile.ProgressionState, res Result, outcome SessionOutcome, now time.Time) profile.ProgressionState {
	state = UpdateStreak(state, now)

	state.Skills = profile.ApplyDeltas(state.Skills, res.SkillDeltas)
	state.LevelScore = res.NewLevelScore
	state.DifficultyMultiplier = res.NewMultiplier
	if res.Transition.Kind != TransitionNone {
		state.Level = res.Transition.To
	}

	state.TotalStoriesRead++
	state.TotalQuestions += outcome.QuestionsAttempted
	state.CorrectAnswers += outcome.QuestionsCorrect

	return state
}
