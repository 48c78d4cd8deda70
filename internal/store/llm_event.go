package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/mkrishnan/storyfox/ent"
	"github.com/mkrishnan/storyfox/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, toLLMEvent(row))
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	e := toLLMEvent(row)
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	type acc struct {
		usage   LLMPurposeUsage
		totalMs int64
	}
	byPurpose := make(map[string]*acc)
	for _, row := range rows {
		a, ok := byPurpose[row.Purpose]
		if !ok {
			a = &acc{usage: LLMPurposeUsage{Purpose: row.Purpose}}
			byPurpose[row.Purpose] = a
		}
		a.usage.Calls++
		a.usage.InputTokens += row.InputTokens
		a.usage.OutputTokens += row.OutputTokens
		a.totalMs += row.LatencyMs
	}

	stats := make([]LLMPurposeUsage, 0, len(byPurpose))
	for _, a := range byPurpose {
		if a.usage.Calls > 0 {
			a.usage.AvgLatencyMs = a.totalMs / int64(a.usage.Calls)
		}
		stats = append(stats, a.usage)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Purpose < stats[j].Purpose
	})
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	for _, row := range rows {
		u, ok := byModel[row.Model]
		if !ok {
			u = &LLMModelUsage{Model: row.Model}
			byModel[row.Model] = u
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
	}

	stats := make([]LLMModelUsage, 0, len(byModel))
	for _, u := range byModel {
		stats = append(stats, *u)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Model < stats[j].Model
	})
	return stats, nil
}

func toLLMEvent(row *ent.LLMRequestEvent) LLMEvent {
	return LLMEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
