package story

import (
	"encoding/json"
	"fmt"

	"github.com/mkrishnan/storyfox/internal/profile"
)

// contentItemJSON is the tagged wire form for a ContentItem, shared by
// the LLM response schema and the story cache.
type contentItemJSON struct {
	Type string `json:"type"`

	// Text segment fields.
	Text string `json:"text,omitempty"`

	// Question fields.
	ID           string   `json:"id,omitempty"`
	Prompt       string   `json:"prompt,omitempty"`
	Options      []string `json:"options,omitempty"`
	CorrectIndex int      `json:"correct_index,omitempty"`
	Skill        string   `json:"skill,omitempty"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Explanation  string   `json:"explanation,omitempty"`
}

const (
	itemTypeText     = "text"
	itemTypeQuestion = "question"
)

// EncodeContent serializes a content sequence to its tagged JSON form.
func EncodeContent(items []ContentItem) (json.RawMessage, error) {
	wire := make([]contentItemJSON, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case TextSegment:
			wire = append(wire, contentItemJSON{Type: itemTypeText, Text: it.Text})
		case QuestionItem:
			wire = append(wire, contentItemJSON{
				Type:         itemTypeQuestion,
				ID:           it.ID,
				Prompt:       it.Prompt,
				Options:      it.Options,
				CorrectIndex: it.CorrectOption,
				Skill:        string(it.Skill),
				Difficulty:   it.Difficulty,
				Explanation:  it.Explanation,
			})
		default:
			return nil, fmt.Errorf("unknown content item type %T", item)
		}
	}
	return json.Marshal(wire)
}

// DecodeContent parses the tagged JSON form back into a content sequence.
// Items with an unknown type tag are skipped rather than failing the
// whole story.
func DecodeContent(raw json.RawMessage) ([]ContentItem, error) {
	var wire []contentItemJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode story content: %w", err)
	}

	items := make([]ContentItem, 0, len(wire))
	for _, w := range wire {
		switch w.Type {
		case itemTypeText:
			items = append(items, TextSegment{Text: w.Text})
		case itemTypeQuestion:
			items = append(items, QuestionItem{
				ID:            w.ID,
				Prompt:        w.Prompt,
				Options:       w.Options,
				CorrectOption: w.CorrectIndex,
				Skill:         profile.SkillTag(w.Skill),
				Difficulty:    w.Difficulty,
				Explanation:   w.Explanation,
			})
		}
	}
	return items, nil
}
