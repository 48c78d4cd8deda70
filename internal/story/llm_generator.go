package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkrishnan/storyfox/internal/llm"
	"github.com/mkrishnan/storyfox/internal/profile"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a generator with the given provider and config.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// storyOutput is the raw LLM response before validation.
type storyOutput struct {
	Title    string          `json:"title"`
	Segments []segmentOutput `json:"segments"`
}

type segmentOutput struct {
	Type         string   `json:"type"`
	Text         string   `json:"text"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Skill        string   `json:"skill"`
	Difficulty   string   `json:"difficulty"`
	Explanation  string   `json:"explanation"`
}

// ValidationError describes why a generated story failed validation.
type ValidationError struct {
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("story validation: %s", e.Message)
}

// Generate produces a single sanitized story.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Story, error) {
	ctx = llm.WithPurpose(ctx, "story-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      StorySchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw storyOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	s := buildStory(raw, input)

	clean, _, err := Sanitize(s)
	if err != nil {
		return nil, &ValidationError{Message: err.Error(), Retryable: true}
	}
	if strings.TrimSpace(clean.Title) == "" {
		return nil, &ValidationError{Message: "title is empty", Retryable: true}
	}
	if len(clean.Questions()) == 0 {
		return nil, &ValidationError{Message: "no valid questions survived filtering", Retryable: true}
	}

	return clean, nil
}

// buildStory converts the raw LLM output into the domain model. Invalid
// questions are left in place here; Sanitize filters them.
func buildStory(raw storyOutput, input GenerateInput) *Story {
	s := &Story{
		ID:       uuid.New().String(),
		Title:    raw.Title,
		Language: input.Language,
	}
	if len(input.Themes) > 0 {
		s.Theme = input.Themes[0]
	}

	for _, seg := range raw.Segments {
		switch seg.Type {
		case itemTypeText:
			s.Content = append(s.Content, TextSegment{Text: seg.Text})
		case itemTypeQuestion:
			s.Content = append(s.Content, QuestionItem{
				ID:            uuid.New().String(),
				Prompt:        seg.Prompt,
				Options:       seg.Options,
				CorrectOption: seg.CorrectIndex,
				Skill:         normalizeSkill(seg.Skill),
				Difficulty:    seg.Difficulty,
				Explanation:   seg.Explanation,
			})
		}
	}

	s.WordCount = CountWords(s.Content)
	return s
}

// normalizeSkill maps an unknown skill tag to comprehension rather than
// dropping an otherwise-valid question.
func normalizeSkill(s string) profile.SkillTag {
	tag := profile.SkillTag(strings.ToLower(strings.TrimSpace(s)))
	if profile.ValidSkillTag(tag) {
		return tag
	}
	return profile.SkillComprehension
}
