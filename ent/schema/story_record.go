package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StoryRecord caches a generated story so sessions can fall back to it
// when the generator is unavailable.
type StoryRecord struct {
	ent.Schema
}

func (StoryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("story_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at generation time"),
		field.String("title").
			NotEmpty(),
		field.String("language").
			Default("en"),
		field.String("theme").
			Default(""),
		field.Int("word_count").
			Default(0),
		field.Bytes("content").
			Comment("Tagged content sequence as JSON"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StoryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
