package story

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Stories are
	// much longer than single questions, so this is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinQuestions and MaxQuestions bound how many comprehension
	// questions the prompt asks for.
	MinQuestions int
	MaxQuestions int

	// BaseWordTarget is the story length at difficulty multiplier 1.0.
	// The actual target scales linearly with the multiplier.
	BaseWordTarget int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:      2048,
		Temperature:    0.8,
		MinQuestions:   3,
		MaxQuestions:   5,
		BaseWordTarget: 150,
	}
}

// TargetWords returns the word-count target for a difficulty multiplier,
// bounded so degenerate multipliers still yield a readable story.
func (c Config) TargetWords(multiplier float64) int {
	if multiplier <= 0 {
		multiplier = 1.0
	}
	words := int(float64(c.BaseWordTarget) * multiplier)
	if words < 60 {
		words = 60
	}
	if words > 400 {
		words = 400
	}
	return words
}
