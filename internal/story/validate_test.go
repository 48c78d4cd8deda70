package story

import (
	"errors"
	"testing"

	"github.com/mkrishnan/storyfox/internal/profile"
)

func validQuestion(id string) QuestionItem {
	return QuestionItem{
		ID:            id,
		Prompt:        "What did the fox find?",
		Options:       []string{"A key", "A map", "A coin"},
		CorrectOption: 1,
		Skill:         profile.SkillComprehension,
		Difficulty:    "easy",
		Explanation:   "The fox dug up an old map under the oak tree.",
	}
}

func TestQuestionValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuestionItem)
		want   bool
	}{
		{"well formed", func(q *QuestionItem) {}, true},
		{"empty prompt", func(q *QuestionItem) { q.Prompt = "  " }, false},
		{"one option", func(q *QuestionItem) { q.Options = []string{"only"} }, false},
		{"correct index negative", func(q *QuestionItem) { q.CorrectOption = -1 }, false},
		{"correct index out of range", func(q *QuestionItem) { q.CorrectOption = 3 }, false},
		{"two options", func(q *QuestionItem) {
			q.Options = []string{"a", "b"}
			q.CorrectOption = 1
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion("q1")
			tt.mutate(&q)
			if got := q.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeFiltersInvalidQuestions(t *testing.T) {
	bad := validQuestion("q-bad")
	bad.CorrectOption = 10

	s := &Story{
		ID:    "s1",
		Title: "The Fox and the Map",
		Content: []ContentItem{
			TextSegment{Text: "Once there was a fox who loved to dig."},
			bad,
			validQuestion("q-good"),
			TextSegment{Text: "The fox followed the map all afternoon."},
		},
	}

	clean, dropped, err := Sanitize(s)
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	qs := clean.Questions()
	if len(qs) != 1 || qs[0].ID != "q-good" {
		t.Errorf("expected only the valid question to survive, got %+v", qs)
	}
}

func TestSanitizeDropsBlankSegments(t *testing.T) {
	s := &Story{
		ID: "s1",
		Content: []ContentItem{
			TextSegment{Text: "   \n  "},
			TextSegment{Text: "The fox ran home before dark."},
		},
	}

	clean, dropped, err := Sanitize(s)
	if err != nil {
		t.Fatalf("Sanitize() error: %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(clean.Content) != 1 {
		t.Errorf("content length = %d, want 1", len(clean.Content))
	}
	if clean.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", clean.WordCount)
	}
}

func TestSanitizeEmptyStory(t *testing.T) {
	if _, _, err := Sanitize(nil); !errors.Is(err, ErrEmptyStory) {
		t.Errorf("Sanitize(nil) error = %v, want ErrEmptyStory", err)
	}

	s := &Story{
		ID:      "s1",
		Content: []ContentItem{validQuestion("q1")},
	}
	if _, _, err := Sanitize(s); !errors.Is(err, ErrEmptyStory) {
		t.Errorf("question-only story error = %v, want ErrEmptyStory", err)
	}
}

func TestCountWords(t *testing.T) {
	items := []ContentItem{
		TextSegment{Text: "One two three."},
		validQuestion("q1"),
		TextSegment{Text: "Four five."},
	}
	if got := CountWords(items); got != 5 {
		t.Errorf("CountWords() = %d, want 5", got)
	}
}
