package progression

// Scoring constants. The 5:2 reward-to-penalty ratio is load-bearing: it
// keeps net progress slightly positive above ~29% accuracy, so a struggling
// reader loses ground slowly while a succeeding one gains quickly.
const (
	CorrectPoints   = 5
	IncorrectPoints = 2

	// PerfectBonus is added when every question in a session was correct.
	PerfectBonus = 10

	// StreakBonusPerDay and StreakBonusCap control the daily-streak bonus:
	// min(streak, cap) * perDay. Capped so long streaks don't dominate.
	StreakBonusPerDay = 3
	StreakBonusCap    = 10

	// LevelUpResetScore is the level score after advancing a level.
	// Overflow is discarded: each level is a fresh start.
	LevelUpResetScore = 50

	// Level-down requires a downward crossing of LevelDownFloor in a
	// session with accuracy below LevelDownAccuracy. The reset score sits
	// near the top of the lower level to avoid oscillation.
	LevelDownFloor      = 20
	LevelDownAccuracy   = 0.5
	LevelDownResetScore = 70

	// Difficulty multiplier hysteresis band. The thresholds are
	// deliberately asymmetric so the multiplier doesn't thrash around a
	// single midpoint.
	DifficultyStep = 0.05
	RaiseAccuracy  = 0.85
	LowerAccuracy  = 0.40

	// Per-skill session deltas: a skill answered correctly at least once
	// grows; a skill missed or not exercised decays slightly.
	SkillGain  = 2
	SkillDecay = 1
)
