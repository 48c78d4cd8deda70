package progression

import "github.com/mkrishnan/storyfox/internal/profile"

// SessionOutcome summarizes the question evidence from one completed
// reading session. SkillCorrect records, per skill tag, whether at least
// one question of that skill was answered correctly.
type SessionOutcome struct {
	QuestionsAttempted int
	QuestionsCorrect   int
	SkillCorrect       map[profile.SkillTag]bool
}

// Accuracy returns the session accuracy, 0 for a session with no questions.
func (o SessionOutcome) Accuracy() float64 {
	if o.QuestionsAttempted == 0 {
		return 0
	}
	return float64(o.QuestionsCorrect) / float64(o.QuestionsAttempted)
}

// TransitionKind describes a level change.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionUp
	TransitionDown
)

// LevelTransition records a level change produced by Evaluate.
type LevelTransition struct {
	Kind TransitionKind
	From profile.Level
	To   profile.Level
}

// Result is the full output of evaluating one session against the
// pre-session state. Identical inputs always yield an identical Result.
type Result struct {
	LevelScoreDelta int
	NewLevelScore   int
	Transition      LevelTransition
	NewMultiplier   float64
	SkillDeltas     profile.SkillDeltas
}

// Evaluate computes the progression update for a completed session.
// Pure function: no clock, no I/O. A session with zero questions
// contributes no evidence — score, level, and multiplier are unchanged,
// but skills still decay (nothing was exercised).
//
// Callers must guarantee QuestionsCorrect <= QuestionsAttempted.
func Evaluate(state profile.ProgressionState, outcome SessionOutcome) Result {
	res := Result{
		NewLevelScore: state.LevelScore,
		NewMultiplier: state.DifficultyMultiplier,
		SkillDeltas:   skillDeltas(outcome.SkillCorrect),
	}

	if outcome.QuestionsAttempted == 0 {
		return res
	}

	accuracy := outcome.Accuracy()

	delta := outcome.QuestionsCorrect * CorrectPoints
	delta -= (outcome.QuestionsAttempted - outcome.QuestionsCorrect) * IncorrectPoints
	if accuracy == 1.0 {
		delta += PerfectBonus
	}
	streak := state.CurrentStreak
	if streak > StreakBonusCap {
		streak = StreakBonusCap
	}
	delta += streak * StreakBonusPerDay

	res.LevelScoreDelta = delta
	candidate := profile.ClampScore(state.LevelScore + delta)

	switch {
	case candidate >= state.Level.AdvanceThreshold() && !state.Level.IsTerminal():
		// Fresh start per level: overflow is not carried over.
		res.Transition = LevelTransition{
			Kind: TransitionUp,
			From: state.Level,
			To:   state.Level.Next(),
		}
		res.NewLevelScore = LevelUpResetScore

	case candidate <= LevelDownFloor && state.LevelScore > LevelDownFloor &&
		accuracy < LevelDownAccuracy && state.Level > profile.LevelSprout:
		// Demote only on a downward crossing, never for merely being low.
		res.Transition = LevelTransition{
			Kind: TransitionDown,
			From: state.Level,
			To:   state.Level.Prev(),
		}
		res.NewLevelScore = LevelDownResetScore

	default:
		res.NewLevelScore = candidate
	}

	// Difficulty adaptation is independent of level transitions.
	switch {
	case accuracy >= RaiseAccuracy:
		res.NewMultiplier = profile.ClampMultiplier(state.DifficultyMultiplier + DifficultyStep)
	case accuracy <= LowerAccuracy:
		res.NewMultiplier = profile.ClampMultiplier(state.DifficultyMultiplier - DifficultyStep)
	}

	return res
}

// skillDeltas builds the per-skill delta map: every known skill either
// grew (answered correctly at least once) or decayed.
func skillDeltas(correct map[profile.SkillTag]bool) profile.SkillDeltas {
	deltas := make(profile.SkillDeltas, 4)
	for _, tag := range profile.AllSkillTags() {
		if correct[tag] {
			deltas[tag] = SkillGain
		} else {
			deltas[tag] = -SkillDecay
		}
	}
	return deltas
}
