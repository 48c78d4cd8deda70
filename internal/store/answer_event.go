package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStoryID(data.StoryID).
		SetQuestionID(data.QuestionID).
		SetSkill(data.Skill).
		SetDifficulty(data.Difficulty).
		SetChosenIndex(data.ChosenIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillBreakdown(ctx context.Context) (map[string]SkillStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := make(map[string]SkillStats)
	for _, e := range events {
		s := stats[e.Skill]
		s.Attempted++
		if e.Correct {
			s.Correct++
		}
		stats[e.Skill] = s
	}
	return stats, nil
}
