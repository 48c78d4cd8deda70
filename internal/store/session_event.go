package store

import (
	"context"
	"fmt"

	"github.com/mkrishnan/storyfox/ent"
	"github.com/mkrishnan/storyfox/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStoryID(data.StoryID).
		SetStoryTitle(data.StoryTitle).
		SetAction(data.Action).
		SetCached(data.Cached).
		SetQuestionsAttempted(data.QuestionsAttempted).
		SetQuestionsCorrect(data.QuestionsCorrect).
		SetReadingSecs(data.ReadingSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.ActionIn("end", "abandon")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(sessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(sessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(sessionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, SessionSummary{
			SessionID:          e.SessionID,
			StoryTitle:         e.StoryTitle,
			Action:             e.Action,
			QuestionsAttempted: e.QuestionsAttempted,
			QuestionsCorrect:   e.QuestionsCorrect,
			ReadingSecs:        e.ReadingSecs,
			Timestamp:          e.Timestamp,
		})
	}
	return summaries, nil
}

func (r *eventRepo) ReadStoryIDs(ctx context.Context, limit int) ([]string, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("start")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query read story ids: %w", err)
	}

	seen := make(map[string]bool, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		if seen[e.StoryID] {
			continue
		}
		seen[e.StoryID] = true
		ids = append(ids, e.StoryID)
	}
	return ids, nil
}
