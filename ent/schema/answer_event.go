package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a reading session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("story_id").
			NotEmpty().
			Comment("Story this question belonged to"),
		field.String("question_id").
			NotEmpty().
			Comment("Stable question identifier within the story"),
		field.String("skill").
			NotEmpty().
			Comment("comprehension, vocabulary, inference, or summarization"),
		field.String("difficulty").
			Comment("easy, medium, or hard"),
		field.Int("chosen_index").
			Comment("Zero-based option the reader picked"),
		field.Int("correct_index").
			Comment("Zero-based correct option"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds from question display to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill"),
		index.Fields("correct"),
	}
}
