package story

import (
	"strings"

	"github.com/mkrishnan/storyfox/internal/profile"
)

// ContentItem is one element of a story's content sequence: either a
// prose segment or an embedded comprehension question.
type ContentItem interface {
	isContentItem()
}

// TextSegment is a passage of story prose.
type TextSegment struct {
	Text string
}

func (TextSegment) isContentItem() {}

// WordCount returns the number of whitespace-separated words in the segment.
func (t TextSegment) WordCount() int {
	return len(strings.Fields(t.Text))
}

// QuestionItem is a multiple-choice comprehension question embedded in
// the story flow.
type QuestionItem struct {
	ID            string
	Prompt        string
	Options       []string
	CorrectOption int
	Skill         profile.SkillTag
	Difficulty    string // easy, medium, hard — analytics only
	Explanation   string
}

func (QuestionItem) isContentItem() {}

// Valid reports whether the question satisfies the structural invariant:
// at least two options, a correct index inside the option range, and a
// non-empty prompt. Invalid questions are filtered out before a story
// reaches the reading engine.
func (q QuestionItem) Valid() bool {
	if strings.TrimSpace(q.Prompt) == "" {
		return false
	}
	if len(q.Options) < 2 {
		return false
	}
	return q.CorrectOption >= 0 && q.CorrectOption < len(q.Options)
}

// Story is one generated reading passage with embedded questions.
// Immutable once produced; owned by the active reading session.
type Story struct {
	ID        string
	Title     string
	Language  string
	Theme     string
	Content   []ContentItem
	WordCount int
}

// Questions returns the question items in presentation order.
func (s *Story) Questions() []QuestionItem {
	var qs []QuestionItem
	for _, item := range s.Content {
		if q, ok := item.(QuestionItem); ok {
			qs = append(qs, q)
		}
	}
	return qs
}

// CountWords recomputes the total word count across all text segments.
func CountWords(items []ContentItem) int {
	total := 0
	for _, item := range items {
		if t, ok := item.(TextSegment); ok {
			total += t.WordCount()
		}
	}
	return total
}
