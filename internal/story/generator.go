package story

import "context"

// GenerateInput holds all context needed to generate a story.
type GenerateInput struct {
	// DifficultyMultiplier scales the word-count target and the question
	// difficulty. Range [0.5, 2.0]; 1.0 is the baseline.
	DifficultyMultiplier float64

	// Themes the reader enjoys (e.g. "space", "animals").
	Themes []string

	// Interests are free-form personalization hints (a pet's name, a
	// favorite sport).
	Interests []string

	// Language is the story language, BCP 47-ish short code ("en", "es").
	Language string

	// ExcludeIDs lists story IDs already read, so the cache fallback does
	// not serve a repeat.
	ExcludeIDs []string
}

// Generator produces stories with embedded comprehension questions.
type Generator interface {
	// Generate produces a single sanitized story for the given input.
	// The returned story has already passed the question validity filter.
	Generate(ctx context.Context, input GenerateInput) (*Story, error)
}
