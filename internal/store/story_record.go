package store

import (
	"context"
	"fmt"

	"github.com/mkrishnan/storyfox/ent"
	"github.com/mkrishnan/storyfox/ent/storyrecord"
)

// storyRepo implements StoryRepo using the ent client.
type storyRepo struct {
	client *ent.Client
}

func (r *storyRepo) SaveStory(ctx context.Context, data StoryRecordData) error {
	exists, err := r.client.StoryRecord.Query().
		Where(storyrecord.StoryID(data.StoryID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check story exists: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.StoryRecord.Create().
		SetStoryID(data.StoryID).
		SetTitle(data.Title).
		SetLanguage(data.Language).
		SetTheme(data.Theme).
		SetWordCount(data.WordCount).
		SetContent(data.Content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save story record: %w", err)
	}
	return nil
}

func (r *storyRepo) RecentStories(ctx context.Context, limit int) ([]StoryRecordData, error) {
	q := r.client.StoryRecord.Query().
		Order(ent.Desc(storyrecord.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	records, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent stories: %w", err)
	}

	stories := make([]StoryRecordData, 0, len(records))
	for _, rec := range records {
		stories = append(stories, StoryRecordData{
			StoryID:   rec.StoryID,
			Title:     rec.Title,
			Language:  rec.Language,
			Theme:     rec.Theme,
			WordCount: rec.WordCount,
			Content:   rec.Content,
			CreatedAt: rec.CreatedAt,
		})
	}
	return stories, nil
}
