package profile

// Level is a discrete reading level on the progression ladder.
type Level int

const (
	LevelSprout Level = iota
	LevelExplorer
	LevelAdventurer
	LevelVoyager
	LevelLegend // terminal level
)

// levelNames maps levels to their display names.
var levelNames = map[Level]string{
	LevelSprout:     "Sprout",
	LevelExplorer:   "Explorer",
	LevelAdventurer: "Adventurer",
	LevelVoyager:    "Voyager",
	LevelLegend:     "Legend",
}

// Name returns the display name for the level.
func (l Level) Name() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "Unknown"
}

// IsTerminal reports whether the level has no successor.
func (l Level) IsTerminal() bool {
	return l >= LevelLegend
}

// AdvanceThreshold returns the level score required to advance out of
// this level. The terminal level requires a full bar and never advances.
func (l Level) AdvanceThreshold() int {
	if l.IsTerminal() {
		return 100
	}
	return 80
}

// Next returns the successor level. The terminal level returns itself.
func (l Level) Next() Level {
	if l.IsTerminal() {
		return l
	}
	return l + 1
}

// Prev returns the predecessor level. The first level returns itself.
func (l Level) Prev() Level {
	if l <= LevelSprout {
		return LevelSprout
	}
	return l - 1
}
