package story

import (
	"errors"
	"strings"
)

// ErrEmptyStory is returned when a story has no readable content left
// after sanitizing.
var ErrEmptyStory = errors.New("story has no readable content")

// Sanitize returns a copy of the story with malformed questions filtered
// out and the word count recomputed. Filtering is a content-validation
// concern, not a session fault: the reading engine never sees an invalid
// question. The second return value is the number of dropped items.
func Sanitize(s *Story) (*Story, int, error) {
	if s == nil {
		return nil, 0, ErrEmptyStory
	}

	clean := &Story{
		ID:       s.ID,
		Title:    s.Title,
		Language: s.Language,
		Theme:    s.Theme,
	}

	dropped := 0
	hasText := false
	for _, item := range s.Content {
		switch it := item.(type) {
		case TextSegment:
			if strings.TrimSpace(it.Text) == "" {
				dropped++
				continue
			}
			if it.WordCount() > 0 {
				hasText = true
			}
			clean.Content = append(clean.Content, it)
		case QuestionItem:
			if !it.Valid() {
				dropped++
				continue
			}
			clean.Content = append(clean.Content, it)
		default:
			dropped++
		}
	}

	if !hasText {
		return nil, dropped, ErrEmptyStory
	}

	clean.WordCount = CountWords(clean.Content)
	return clean, dropped, nil
}
