package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records the start and end of a reading session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the reading session"),
		field.String("story_id").
			NotEmpty().
			Comment("Story read in this session"),
		field.String("story_title").
			Comment("Denormalized title for history display"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or abandon"),
		field.Bool("cached").
			Default(false).
			Comment("Whether the story came from the cache fallback"),
		field.Int("questions_attempted").
			Default(0),
		field.Int("questions_correct").
			Default(0),
		field.Int("reading_secs").
			Default(0).
			Comment("Wall-clock reading time in seconds"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
