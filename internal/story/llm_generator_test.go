package story

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mkrishnan/storyfox/internal/llm"
	"github.com/mkrishnan/storyfox/internal/profile"
)

func validStoryJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Pip Finds a Map",
		"segments": [
			{"type": "text", "text": "Pip the fox loved to dig. One morning her paw hit something hard under the old oak tree."},
			{"type": "question", "prompt": "What did Pip find?", "options": ["A bone", "Something hard", "A ball"], "correct_index": 1, "skill": "comprehension", "difficulty": "easy", "explanation": "Her paw hit something hard under the tree."},
			{"type": "text", "text": "It was a rolled-up map with a red X near the river. Pip grabbed it and ran."},
			{"type": "question", "prompt": "Where do you think Pip will go next?", "options": ["To sleep", "To the river", "To school"], "correct_index": 1, "skill": "inference", "difficulty": "medium", "explanation": "The X on the map was near the river, so that is where Pip is headed."}
		]
	}`)
}

func TestGenerateBuildsStory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStoryJSON()})
	gen := NewLLMGenerator(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), GenerateInput{
		DifficultyMultiplier: 1.0,
		Themes:               []string{"adventure"},
		Language:             "en",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if s.Title != "Pip Finds a Map" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.ID == "" {
		t.Error("story ID should be assigned")
	}
	if s.Theme != "adventure" {
		t.Errorf("Theme = %q, want adventure", s.Theme)
	}
	if s.Language != "en" {
		t.Errorf("Language = %q, want en", s.Language)
	}
	qs := s.Questions()
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[1].Skill != profile.SkillInference {
		t.Errorf("second question skill = %q, want inference", qs[1].Skill)
	}
	if s.WordCount == 0 {
		t.Error("WordCount should be recomputed")
	}
}

func TestGeneratePromptCarriesPreferences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStoryJSON()})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		DifficultyMultiplier: 1.5,
		Themes:               []string{"space", "robots"},
		Interests:            []string{"a dog named Rex"},
		Language:             "es",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("request should carry the story schema")
	}
	user := req.Messages[0].Content
	for _, want := range []string{"space, robots", "a dog named Rex", "Language: es"} {
		if !strings.Contains(user, want) {
			t.Errorf("user message missing %q:\n%s", want, user)
		}
	}
}

func TestGenerateUnknownSkillNormalized(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Pip",
		"segments": [
			{"type": "text", "text": "Pip the fox ran through the tall grass."},
			{"type": "question", "prompt": "Who ran?", "options": ["Pip", "Rex"], "correct_index": 0, "skill": "critical-thinking", "difficulty": "easy", "explanation": "Pip ran."}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewLLMGenerator(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), GenerateInput{DifficultyMultiplier: 1.0})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got := s.Questions()[0].Skill; got != profile.SkillComprehension {
		t.Errorf("unknown skill normalized to %q, want comprehension", got)
	}
}

func TestGenerateNoValidQuestions(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "Pip",
		"segments": [
			{"type": "text", "text": "Pip the fox ran through the tall grass."},
			{"type": "question", "prompt": "", "options": ["a", "b"], "correct_index": 0}
		]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := NewLLMGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{DifficultyMultiplier: 1.0})
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !valErr.Retryable {
		t.Error("empty-question failure should be retryable")
	}
}

func TestGenerateMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"title":`)})
	gen := NewLLMGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := NewLLMGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestTargetWordsScaling(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		multiplier float64
		want       int
	}{
		{1.0, 150},
		{0.5, 75},
		{2.0, 300},
		{0, 150},    // degenerate multiplier falls back to baseline
		{0.1, 60},   // floor
		{10.0, 400}, // ceiling
	}
	for _, tt := range tests {
		if got := cfg.TargetWords(tt.multiplier); got != tt.want {
			t.Errorf("TargetWords(%.1f) = %d, want %d", tt.multiplier, got, tt.want)
		}
	}
}
