package story

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a children's author and reading teacher writing short interactive stories for readers aged 6-10.

Rules:
- Write one complete short story broken into prose segments of 2-4 sentences each.
- Interleave comprehension questions between segments. Never put two questions back to back, and never start with a question.
- Each question must be answerable from the story text read so far, with 3-4 options and exactly one correct option.
- Tag every question with the single reading skill it exercises: comprehension (literal recall), vocabulary (word meaning in context), inference (reading between the lines), or summarization (main idea so far).
- Spread questions across different skills within one story.
- The explanation for each question should be warm and encouraging, one or two sentences.
- Keep the vocabulary and sentence complexity appropriate for the requested difficulty. Higher difficulty means longer sentences, richer vocabulary, and more inferential questions.
- Write the story in the requested language. Keep it age-appropriate, kind, and free of violence or scary content.`

// buildUserMessage constructs the generation request from the input and
// config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target length: about %d words\n", cfg.TargetWords(input.DifficultyMultiplier))
	fmt.Fprintf(&b, "Difficulty: %.2f (0.5 = very easy, 1.0 = typical, 2.0 = very challenging)\n", input.DifficultyMultiplier)
	fmt.Fprintf(&b, "Questions: between %d and %d\n", cfg.MinQuestions, cfg.MaxQuestions)

	lang := input.Language
	if lang == "" {
		lang = "en"
	}
	fmt.Fprintf(&b, "Language: %s\n", lang)

	if len(input.Themes) > 0 {
		fmt.Fprintf(&b, "Themes the reader loves: %s\n", strings.Join(input.Themes, ", "))
	}
	if len(input.Interests) > 0 {
		fmt.Fprintf(&b, "Personal touches to weave in: %s\n", strings.Join(input.Interests, ", "))
	}

	return b.String()
}
