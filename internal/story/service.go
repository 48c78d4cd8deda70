package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkrishnan/storyfox/internal/store"
)

// ErrNoStory is returned when generation failed and no cached story is
// available. This is the only story failure surfaced to the reader
// ("could not start a session"); everything else is absorbed.
var ErrNoStory = errors.New("no story available")

// GenerateResult is a story ready for a reading session. Cached is true
// when the generator failed and a previously stored story was served
// instead.
type GenerateResult struct {
	Story  *Story
	Cached bool
}

// generateAttempts is how many times generation is retried before
// falling back to the cache.
const generateAttempts = 3

// Service wraps a Generator with retry and cache fallback, and records
// generated stories for later fallback and exclude-ID history.
type Service struct {
	generator Generator
	stories   store.StoryRepo
}

// NewService creates a story service. generator may be nil (no LLM
// configured); the service then serves cached stories only.
func NewService(generator Generator, stories store.StoryRepo) *Service {
	return &Service{generator: generator, stories: stories}
}

// NextStory returns the story for the next reading session: a freshly
// generated one when possible, otherwise the most recent cached story not
// in input.ExcludeIDs.
func (s *Service) NextStory(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if s.generator != nil {
		fresh, err := s.generate(ctx, input)
		if err == nil {
			s.save(ctx, fresh)
			return &GenerateResult{Story: fresh}, nil
		}
	}

	cached, err := s.cachedFallback(ctx, input.ExcludeIDs)
	if err != nil {
		return nil, ErrNoStory
	}
	return &GenerateResult{Story: cached, Cached: true}, nil
}

func (s *Service) generate(ctx context.Context, input GenerateInput) (*Story, error) {
	var lastErr error
	for i := 0; i < generateAttempts; i++ {
		st, err := s.generator.Generate(ctx, input)
		if err == nil {
			return st, nil
		}
		lastErr = err
		var valErr *ValidationError
		if errors.As(err, &valErr) && !valErr.Retryable {
			break
		}
	}
	return nil, lastErr
}

// save records a generated story for fallback. Best effort: a cache
// write failure never fails the session start.
func (s *Service) save(ctx context.Context, st *Story) {
	if s.stories == nil {
		return
	}
	content, err := EncodeContent(st.Content)
	if err != nil {
		return
	}
	_ = s.stories.SaveStory(ctx, store.StoryRecordData{
		StoryID:   st.ID,
		Title:     st.Title,
		Language:  st.Language,
		Theme:     st.Theme,
		WordCount: st.WordCount,
		Content:   content,
	})
}

func (s *Service) cachedFallback(ctx context.Context, excludeIDs []string) (*Story, error) {
	if s.stories == nil {
		return nil, ErrNoStory
	}

	records, err := s.stories.RecentStories(ctx, 20)
	if err != nil {
		return nil, fmt.Errorf("load cached stories: %w", err)
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	for _, rec := range records {
		if excluded[rec.StoryID] {
			continue
		}
		items, err := DecodeContent(rec.Content)
		if err != nil {
			continue
		}
		st := &Story{
			ID:       rec.StoryID,
			Title:    rec.Title,
			Language: rec.Language,
			Theme:    rec.Theme,
			Content:  items,
		}
		clean, _, err := Sanitize(st)
		if err != nil {
			continue
		}
		return clean, nil
	}

	return nil, ErrNoStory
}
