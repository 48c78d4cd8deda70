package story

import (
	"context"
	"errors"
	"testing"

	"github.com/mkrishnan/storyfox/internal/store"
)

// fakeGenerator returns canned stories or errors in FIFO order.
type fakeGenerator struct {
	results []*Story
	errs    []error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, _ GenerateInput) (*Story, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.results) {
		return f.results[i], nil
	}
	return nil, errors.New("no more canned results")
}

// fakeStoryRepo is an in-memory store.StoryRepo.
type fakeStoryRepo struct {
	records []store.StoryRecordData
	saveErr error
}

func (f *fakeStoryRepo) SaveStory(_ context.Context, data store.StoryRecordData) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, r := range f.records {
		if r.StoryID == data.StoryID {
			return nil
		}
	}
	f.records = append(f.records, data)
	return nil
}

func (f *fakeStoryRepo) RecentStories(_ context.Context, limit int) ([]store.StoryRecordData, error) {
	// Most recent first.
	out := make([]store.StoryRecordData, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0; i-- {
		out = append(out, f.records[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func testStory(id, title string) *Story {
	s := &Story{
		ID:    id,
		Title: title,
		Content: []ContentItem{
			TextSegment{Text: "Pip the fox trotted into the meadow at sunrise."},
			validQuestion("q-" + id),
		},
	}
	s.WordCount = CountWords(s.Content)
	return s
}

func TestNextStoryFresh(t *testing.T) {
	repo := &fakeStoryRepo{}
	gen := &fakeGenerator{results: []*Story{testStory("s1", "Sunrise")}}
	svc := NewService(gen, repo)

	res, err := svc.NextStory(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("NextStory() error: %v", err)
	}
	if res.Cached {
		t.Error("fresh story should not be marked cached")
	}
	if res.Story.ID != "s1" {
		t.Errorf("story ID = %q, want s1", res.Story.ID)
	}
	if len(repo.records) != 1 {
		t.Errorf("fresh story should be cached for fallback, got %d records", len(repo.records))
	}
}

func TestNextStoryRetriesTransientFailure(t *testing.T) {
	gen := &fakeGenerator{
		errs:    []error{errors.New("flaky"), nil},
		results: []*Story{nil, testStory("s1", "Second Try")},
	}
	svc := NewService(gen, &fakeStoryRepo{})

	res, err := svc.NextStory(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("NextStory() error: %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if res.Story.Title != "Second Try" {
		t.Errorf("Title = %q", res.Story.Title)
	}
}

func TestNextStoryNonRetryableStopsEarly(t *testing.T) {
	gen := &fakeGenerator{
		errs: []error{
			&ValidationError{Message: "bad shape", Retryable: false},
			errors.New("should not be reached"),
			errors.New("should not be reached"),
		},
	}
	svc := NewService(gen, &fakeStoryRepo{})

	_, err := svc.NextStory(context.Background(), GenerateInput{})
	if !errors.Is(err, ErrNoStory) {
		t.Fatalf("error = %v, want ErrNoStory", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 (non-retryable)", gen.calls)
	}
}

func TestNextStoryCachedFallback(t *testing.T) {
	repo := &fakeStoryRepo{}
	svc := NewService(&fakeGenerator{results: []*Story{testStory("s1", "Cached One")}}, repo)

	// First call generates and caches.
	if _, err := svc.NextStory(context.Background(), GenerateInput{}); err != nil {
		t.Fatalf("seed NextStory() error: %v", err)
	}

	// Generator exhausted: the cached story is served.
	res, err := svc.NextStory(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("fallback NextStory() error: %v", err)
	}
	if !res.Cached {
		t.Error("fallback story should be marked cached")
	}
	if res.Story.Title != "Cached One" {
		t.Errorf("Title = %q", res.Story.Title)
	}
	if len(res.Story.Questions()) != 1 {
		t.Errorf("cached story questions = %d, want 1", len(res.Story.Questions()))
	}
}

func TestNextStoryFallbackHonorsExcludes(t *testing.T) {
	repo := &fakeStoryRepo{}
	gen := &fakeGenerator{results: []*Story{
		testStory("s1", "First"),
		testStory("s2", "Second"),
	}}
	svc := NewService(gen, repo)

	for i := 0; i < 2; i++ {
		if _, err := svc.NextStory(context.Background(), GenerateInput{}); err != nil {
			t.Fatalf("seed NextStory() error: %v", err)
		}
	}

	res, err := svc.NextStory(context.Background(), GenerateInput{ExcludeIDs: []string{"s2"}})
	if err != nil {
		t.Fatalf("NextStory() error: %v", err)
	}
	if res.Story.ID != "s1" {
		t.Errorf("story ID = %q, want s1 (s2 excluded)", res.Story.ID)
	}

	// Everything excluded: no story at all.
	_, err = svc.NextStory(context.Background(), GenerateInput{ExcludeIDs: []string{"s1", "s2"}})
	if !errors.Is(err, ErrNoStory) {
		t.Errorf("error = %v, want ErrNoStory", err)
	}
}

func TestNextStoryNilGenerator(t *testing.T) {
	svc := NewService(nil, &fakeStoryRepo{})
	if _, err := svc.NextStory(context.Background(), GenerateInput{}); !errors.Is(err, ErrNoStory) {
		t.Errorf("error = %v, want ErrNoStory", err)
	}
}

func TestSaveFailureDoesNotFailSession(t *testing.T) {
	repo := &fakeStoryRepo{saveErr: errors.New("disk full")}
	gen := &fakeGenerator{results: []*Story{testStory("s1", "Sunrise")}}
	svc := NewService(gen, repo)

	res, err := svc.NextStory(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("NextStory() error: %v", err)
	}
	if res.Story == nil || res.Cached {
		t.Error("fresh story should still be returned when the cache write fails")
	}
}

func TestContentRoundTrip(t *testing.T) {
	items := []ContentItem{
		TextSegment{Text: "Pip found a map."},
		validQuestion("q1"),
	}

	raw, err := EncodeContent(items)
	if err != nil {
		t.Fatalf("EncodeContent() error: %v", err)
	}
	decoded, err := DecodeContent(raw)
	if err != nil {
		t.Fatalf("DecodeContent() error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d items, want 2", len(decoded))
	}
	q, ok := decoded[1].(QuestionItem)
	if !ok {
		t.Fatalf("second item is %T, want QuestionItem", decoded[1])
	}
	if q.ID != "q1" || q.CorrectOption != 1 {
		t.Errorf("question round trip mismatch: %+v", q)
	}
}
